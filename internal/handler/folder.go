package handler

import (
	"log/slog"
	"net/http"

	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/services"
	"vaultgate/internal/httputil"
)

// FolderHandler serves the folder endpoints.
type FolderHandler struct {
	folderService services.FolderService
	logger        *slog.Logger
}

func NewFolderHandler(folderService services.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// Create handles POST /api/folders.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.FolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.Create(r.Context(), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder.Response())
}

// Update handles PUT /api/folders/{id}.
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.FolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.Update(r.Context(), httputil.GetUserID(r), id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder.Response())
}

// Delete handles DELETE /api/folders/{id}.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.folderService.Delete(r.Context(), httputil.GetUserID(r), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
