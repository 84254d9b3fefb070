package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultgate/internal/auth"
	"vaultgate/internal/httputil"
)

func authStack(issuer *auth.TokenIssuer) (http.Handler, *string) {
	var seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = httputil.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(issuer)(next), &seenUser
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue("user-1", "me@example.com")
	require.NoError(t, err)

	handler, seenUser := authStack(issuer)

	req := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *seenUser)
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	handler, _ := authStack(issuer)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddlewareSkipsPublicPaths(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", time.Hour)
	handler, _ := authStack(issuer)

	for _, path := range []string{
		"/identity/connect/token",
		"/identity/accounts/prelogin",
		"/api/config",
		"/health",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
