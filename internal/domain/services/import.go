package services

import (
	"context"

	"vaultgate/internal/domain/models"
)

// ImportService reconciles one bulk import payload into batched writes.
// Ownership misses on this path surface as Unauthorized, and nothing is
// persisted when any item fails the check.
type ImportService interface {
	Import(ctx context.Context, userID string, req *models.ImportRequest) error
}
