package service

import (
	"context"
	"log/slog"

	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
	"vaultgate/internal/domain/services"
)

type syncService struct {
	userRepo   repositories.UserRepository
	folderRepo repositories.FolderRepository
	cipherRepo repositories.CipherRepository
	logger     *slog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	userRepo repositories.UserRepository,
	folderRepo repositories.FolderRepository,
	cipherRepo repositories.CipherRepository,
	logger *slog.Logger,
) services.SyncService {
	return &syncService{
		userRepo:   userRepo,
		folderRepo: folderRepo,
		cipherRepo: cipherRepo,
		logger:     logger,
	}
}

// Sync assembles the full vault snapshot for the principal.
func (s *syncService) Sync(ctx context.Context, userID string) (*models.SyncResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, wrapStorage(err)
	}

	folders, err := s.folderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrapStorage(err)
	}

	ciphers, err := s.cipherRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrapStorage(err)
	}

	folderResponses := make([]*models.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		folderResponses = append(folderResponses, folder.Response())
	}

	cipherResponses := make([]*models.CipherResponse, 0, len(ciphers))
	for _, cipher := range ciphers {
		cipherResponses = append(cipherResponses, cipher.Response())
	}

	return &models.SyncResponse{
		Object:      "sync",
		Profile:     user.Profile(),
		Folders:     folderResponses,
		Collections: []any{},
		Ciphers:     cipherResponses,
		Domains:     nil,
		Policies:    []any{},
		Sends:       []any{},
	}, nil
}
