package middleware

import (
	"net/http"
	"strings"

	"vaultgate/internal/auth"
	"vaultgate/internal/httputil"
)

// publicPrefixes are reachable without a token: the identity endpoints
// bootstrap authentication, and /api/config is probed by clients before
// login.
var publicPrefixes = []string{
	"/identity/",
	"/api/config",
	"/health",
}

// AuthMiddleware validates the Bearer token and stores the principal in the
// request context.
func AuthMiddleware(verifier *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Missing access token")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "Invalid access token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.Subject))
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
