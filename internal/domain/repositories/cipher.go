package repositories

import (
	"context"

	"vaultgate/internal/domain/models"
)

// CipherRepository persists vault items. Every read and mutation is scoped
// by (id, userID) so one principal can never touch another's records.
type CipherRepository interface {
	Create(ctx context.Context, cipher *models.Cipher) error
	GetByID(ctx context.Context, id, userID string) (*models.Cipher, error)
	Update(ctx context.Context, cipher *models.Cipher) error
	Delete(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*models.Cipher, error)

	// InsertIgnoreOp builds a batched insert that is a no-op when the id is
	// already present, making import retries safe.
	InsertIgnoreOp(cipher *models.Cipher) BatchOp
}
