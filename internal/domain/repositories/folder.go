package repositories

import (
	"context"

	"vaultgate/internal/domain/models"
)

// FolderRepository persists folders, owner-scoped like ciphers.
type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	Update(ctx context.Context, folder *models.Folder) error
	Delete(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Folder, error)

	// InsertIgnoreOp builds a batched insert that is a no-op when the id is
	// already present.
	InsertIgnoreOp(folder *models.Folder) BatchOp
}
