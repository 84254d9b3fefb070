package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
	"vaultgate/internal/domain/services"
)

type folderService struct {
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(folderRepo repositories.FolderRepository, logger *slog.Logger) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// Create stores a new folder for the principal.
func (s *folderService) Create(ctx context.Context, userID string, req *models.FolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.BadRequestError{Message: err.Error()}
	}

	now := time.Now().UTC()
	folder := &models.Folder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, wrapStorage(err)
	}

	s.logger.Debug("folder created", "folder_id", folder.ID, "user_id", userID)
	return folder, nil
}

// Update renames a folder, scoped by (id, userID).
func (s *folderService) Update(ctx context.Context, userID, id string, req *models.FolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.BadRequestError{Message: err.Error()}
	}

	folder := &models.Folder{
		ID:        id,
		UserID:    userID,
		Name:      req.Name,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, wrapStorage(err)
	}

	s.logger.Debug("folder updated", "folder_id", id, "user_id", userID)
	return folder, nil
}

// Delete removes a folder. Items referencing it keep their folderId.
func (s *folderService) Delete(ctx context.Context, userID, id string) error {
	if err := s.folderRepo.Delete(ctx, id, userID); err != nil {
		return wrapStorage(err)
	}

	s.logger.Debug("folder deleted", "folder_id", id, "user_id", userID)
	return nil
}
