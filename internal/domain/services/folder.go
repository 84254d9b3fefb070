package services

import (
	"context"

	"vaultgate/internal/domain/models"
)

// FolderService owns folder lifecycle.
type FolderService interface {
	Create(ctx context.Context, userID string, req *models.FolderRequest) (*models.Folder, error)
	Update(ctx context.Context, userID, id string, req *models.FolderRequest) (*models.Folder, error)
	Delete(ctx context.Context, userID, id string) error
}
