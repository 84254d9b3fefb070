package services

import (
	"context"

	"vaultgate/internal/domain/models"
)

// CipherService owns single vault item lifecycle. Ownership misses surface
// as NotFound on these paths.
type CipherService interface {
	Create(ctx context.Context, userID string, req *models.CreateCipherRequest) (*models.Cipher, error)
	Update(ctx context.Context, userID, id string, req *models.CipherRequest) (*models.Cipher, error)
	Delete(ctx context.Context, userID, id string) error
}
