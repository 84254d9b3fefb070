package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// AccountHandler serves the account lifecycle endpoints.
type AccountHandler struct {
	accountService services.AccountService
	logger         *slog.Logger
}

func NewAccountHandler(accountService services.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Prelogin handles POST /identity/accounts/prelogin and
// POST /api/accounts/prelogin. It returns the KDF parameters the client
// must use to derive the master key before authenticating.
func (h *AccountHandler) Prelogin(w http.ResponseWriter, r *http.Request) {
	var req models.PreloginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.accountService.Prelogin(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// Register handles POST /identity/accounts/register/finish.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.accountService.Register(r.Context(), &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// SendVerificationEmail handles
// POST /identity/accounts/register/send-verification-email. No mail is ever
// sent; the fixed token below satisfies the client's signup flow, which
// passes it back verbatim during registration.
func (h *AccountHandler) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, "register_verification_token")
}

// RevisionDate handles GET /api/accounts/revision-date. The client compares
// this millisecond timestamp against its local copy to decide whether to
// sync.
func (h *AccountHandler) RevisionDate(w http.ResponseWriter, r *http.Request) {
	millis, err := h.accountService.RevisionDate(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(strconv.FormatInt(millis, 10)))
}
