package handler

import (
	"log/slog"
	"net/http"

	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// IdentityHandler serves the OAuth-style token endpoint.
type IdentityHandler struct {
	accountService services.AccountService
	logger         *slog.Logger
}

func NewIdentityHandler(accountService services.AccountService, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Token handles POST /identity/connect/token. The body is form-encoded per
// the OAuth password grant; username carries the email and password carries
// the client-derived master password hash.
func (h *IdentityHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	if grant := r.PostFormValue("grant_type"); grant != "password" {
		httputil.RespondError(w, http.StatusBadRequest, "unsupported grant type")
		return
	}

	email := r.PostFormValue("username")
	passwordHash := r.PostFormValue("password")
	if email == "" || passwordHash == "" {
		httputil.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.accountService.Token(r.Context(), email, passwordHash)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}
