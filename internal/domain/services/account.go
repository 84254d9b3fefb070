package services

import (
	"context"

	"vaultgate/internal/domain/models"
)

// AccountService owns account registration, KDF metadata lookup and token
// issuance. The server never runs a KDF itself; it stores and echoes what
// the client derived.
type AccountService interface {
	Prelogin(ctx context.Context, req *models.PreloginRequest) (*models.PreloginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	Token(ctx context.Context, email, masterPasswordHash string) (*models.TokenResponse, error)
	RevisionDate(ctx context.Context, userID string) (int64, error)
}

// SyncService assembles the full vault snapshot for one principal.
type SyncService interface {
	Sync(ctx context.Context, userID string) (*models.SyncResponse, error)
}
