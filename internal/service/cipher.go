package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
	"vaultgate/internal/domain/services"
)

type cipherService struct {
	cipherRepo repositories.CipherRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewCipherService creates a new cipher service
func NewCipherService(cipherRepo repositories.CipherRepository, txManager repositories.TransactionManager, logger *slog.Logger) services.CipherService {
	return &cipherService{
		cipherRepo: cipherRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Create stores a new vault item and returns the canonical record,
// including the echoed collection ids.
func (s *cipherService) Create(ctx context.Context, userID string, req *models.CreateCipherRequest) (*models.Cipher, error) {
	if err := req.Cipher.Validate(); err != nil {
		return nil, &domain.BadRequestError{Message: err.Error()}
	}

	data, err := json.Marshal(req.Cipher.CipherData())
	if err != nil {
		return nil, fmt.Errorf("encode cipher data: %w", err)
	}

	now := time.Now().UTC()
	cipher := &models.Cipher{
		ID:             uuid.NewString(),
		UserID:         &userID,
		OrganizationID: req.Cipher.OrganizationID,
		Type:           req.Cipher.Type,
		Data:           data,
		Favorite:       bool(req.Cipher.Favorite),
		FolderID:       req.Cipher.FolderID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CollectionIDs:  req.CollectionIDs,
	}

	if err := s.cipherRepo.Create(ctx, cipher); err != nil {
		return nil, wrapStorage(err)
	}

	s.logger.Debug("cipher created", "cipher_id", cipher.ID, "user_id", userID)
	return cipher, nil
}

// Update replaces the payload of an existing item. The owner-scoped fetch
// reports NotFound for foreign records; createdAt is preserved and
// updatedAt refreshed. Fetch and rewrite run in one transaction so two
// concurrent updates serialize instead of interleaving.
func (s *cipherService) Update(ctx context.Context, userID, id string, req *models.CipherRequest) (*models.Cipher, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.BadRequestError{Message: err.Error()}
	}

	data, err := json.Marshal(req.CipherData())
	if err != nil {
		return nil, fmt.Errorf("encode cipher data: %w", err)
	}

	var cipher *models.Cipher
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		existing, err := s.cipherRepo.GetByID(txCtx, id, userID)
		if err != nil {
			return err
		}

		cipher = &models.Cipher{
			ID:             id,
			UserID:         &userID,
			OrganizationID: req.OrganizationID,
			Type:           req.Type,
			Data:           data,
			Favorite:       bool(req.Favorite),
			FolderID:       req.FolderID,
			CreatedAt:      existing.CreatedAt,
			UpdatedAt:      time.Now().UTC(),
		}
		return s.cipherRepo.Update(txCtx, cipher)
	})
	if err != nil {
		return nil, wrapStorage(err)
	}

	s.logger.Debug("cipher updated", "cipher_id", id, "user_id", userID)
	return cipher, nil
}

// Delete removes an item, scoped by (id, userID).
func (s *cipherService) Delete(ctx context.Context, userID, id string) error {
	if err := s.cipherRepo.Delete(ctx, id, userID); err != nil {
		return wrapStorage(err)
	}

	s.logger.Debug("cipher deleted", "cipher_id", id, "user_id", userID)
	return nil
}
