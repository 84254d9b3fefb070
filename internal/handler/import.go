package handler

import (
	"log/slog"
	"net/http"

	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// ImportHandler serves the bulk import endpoint.
type ImportHandler struct {
	importService services.ImportService
	logger        *slog.Logger
}

func NewImportHandler(importService services.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// Import handles POST /api/ciphers/import. On success the clients expect an
// empty JSON object, not an empty body.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.importService.Import(r.Context(), httputil.GetUserID(r), &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{})
}
