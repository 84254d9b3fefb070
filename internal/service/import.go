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

type importService struct {
	folderRepo repositories.FolderRepository
	cipherRepo repositories.CipherRepository
	executor   repositories.BatchExecutor
	chunkSize  int
	logger     *slog.Logger
}

// NewImportService creates a new import service. chunkSize bounds the number
// of writes per atomic batch; 0 executes each phase as one unit.
func NewImportService(
	folderRepo repositories.FolderRepository,
	cipherRepo repositories.CipherRepository,
	executor repositories.BatchExecutor,
	chunkSize int,
	logger *slog.Logger,
) services.ImportService {
	return &importService{
		folderRepo: folderRepo,
		cipherRepo: cipherRepo,
		executor:   executor,
		chunkSize:  chunkSize,
		logger:     logger,
	}
}

// Import reconciles the batch and persists it in two phases: all folder
// inserts, then all cipher inserts. Ciphers are never queued before every
// folder write has returned, so resolved folder references are valid by the
// time the items land. Both phases use insert-ignore semantics, which makes
// resubmitting the same batch a safe retry.
func (s *importService) Import(ctx context.Context, userID string, req *models.ImportRequest) error {
	// One timestamp for the whole operation keeps the batch internally
	// consistent.
	now := time.Now().UTC()

	folders, ciphers, err := reconcile(req, userID, now)
	if err != nil {
		return err
	}

	folderOps := make([]repositories.BatchOp, 0, len(folders))
	for _, folder := range folders {
		folderOps = append(folderOps, s.folderRepo.InsertIgnoreOp(folder))
	}

	cipherOps := make([]repositories.BatchOp, 0, len(ciphers))
	for _, cipher := range ciphers {
		cipherOps = append(cipherOps, s.cipherRepo.InsertIgnoreOp(cipher))
	}

	if err := s.executor.ExecuteBatched(ctx, folderOps, s.chunkSize); err != nil {
		return wrapStorage(err)
	}
	if err := s.executor.ExecuteBatched(ctx, cipherOps, s.chunkSize); err != nil {
		return wrapStorage(err)
	}

	s.logger.Info("import complete",
		"user_id", userID,
		"folders", len(folders),
		"ciphers", len(ciphers),
	)
	return nil
}

// reconcile turns one import payload into persistable records.
//
// Folder ids supplied by the client are retained (a missing id gets a fresh
// one); together with insert-ignore writes this is what makes reimporting
// the same payload a no-op. Relationships are positional indices into the
// original input sequences and are resolved before item transformation;
// out-of-range indices are silently ignored to tolerate partial legacy
// payloads.
func reconcile(req *models.ImportRequest, userID string, now time.Time) ([]*models.Folder, []*models.Cipher, error) {
	// Ownership precheck runs before anything is queued: a single mismatch
	// fails the whole import with nothing persisted.
	for _, cipher := range req.Ciphers {
		if cipher.EncryptedFor != userID {
			return nil, nil, &domain.UnauthorizedError{Message: "Cipher encrypted for wrong user"}
		}
	}

	folders := make([]*models.Folder, 0, len(req.Folders))
	for _, f := range req.Folders {
		id := f.ID
		if id == "" {
			id = uuid.NewString()
		}
		folders = append(folders, &models.Folder{
			ID:        id,
			UserID:    userID,
			Name:      f.Name,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, rel := range req.FolderRelationships {
		if rel.Key < 0 || rel.Key >= len(req.Ciphers) {
			continue
		}
		if rel.Value < 0 || rel.Value >= len(folders) {
			continue
		}
		folderID := folders[rel.Value].ID
		req.Ciphers[rel.Key].FolderID = &folderID
	}

	ciphers := make([]*models.Cipher, 0, len(req.Ciphers))
	for i := range req.Ciphers {
		item := &req.Ciphers[i]
		if err := item.Validate(); err != nil {
			return nil, nil, &domain.BadRequestError{Message: fmt.Sprintf("cipher %d: %v", i, err)}
		}

		data, err := json.Marshal(item.CipherData())
		if err != nil {
			return nil, nil, fmt.Errorf("encode cipher data: %w", err)
		}

		ciphers = append(ciphers, &models.Cipher{
			ID:             uuid.NewString(),
			UserID:         &userID,
			OrganizationID: item.OrganizationID,
			Type:           item.Type,
			Data:           data,
			Favorite:       bool(item.Favorite),
			FolderID:       item.FolderID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return folders, ciphers, nil
}
