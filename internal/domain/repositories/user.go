package repositories

import (
	"context"

	"vaultgate/internal/domain/models"
)

// UserRepository persists accounts and their KDF metadata.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// KdfIterationsByEmail returns nil without error when the account does
	// not exist; prelogin substitutes the default so account existence is
	// not revealed.
	KdfIterationsByEmail(ctx context.Context, email string) (*int, error)
}
