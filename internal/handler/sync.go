package handler

import (
	"log/slog"
	"net/http"

	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// SyncHandler serves the full vault snapshot endpoint.
type SyncHandler struct {
	syncService services.SyncService
	logger      *slog.Logger
}

func NewSyncHandler(syncService services.SyncService, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// Sync handles GET /api/sync.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	resp, err := h.syncService.Sync(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}
