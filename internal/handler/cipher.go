package handler

import (
	"log/slog"
	"net/http"

	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// CipherHandler serves the vault item endpoints.
type CipherHandler struct {
	cipherService services.CipherService
	logger        *slog.Logger
}

func NewCipherHandler(cipherService services.CipherService, logger *slog.Logger) *CipherHandler {
	return &CipherHandler{
		cipherService: cipherService,
		logger:        logger,
	}
}

// Create handles POST /api/ciphers and POST /api/ciphers/create. The body is
// either a flat cipher request or an envelope with the cipher nested under
// "cipher"; the request type accepts both.
func (h *CipherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCipherRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cipher, err := h.cipherService.Create(r.Context(), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cipher.Response())
}

// Update handles PUT /api/ciphers/{id}.
func (h *CipherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.CipherRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cipher, err := h.cipherService.Update(r.Context(), httputil.GetUserID(r), id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cipher.Response())
}

// Delete handles PUT /api/ciphers/{id}/delete, which the clients use for
// permanent deletion.
func (h *CipherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.cipherService.Delete(r.Context(), httputil.GetUserID(r), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
