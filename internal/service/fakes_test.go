package service

import (
	"context"
	"io"
	"log/slog"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
	"vaultgate/internal/domain/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCipherRepo struct {
	ciphers map[string]*models.Cipher
	created []*models.Cipher
}

func newFakeCipherRepo() *fakeCipherRepo {
	return &fakeCipherRepo{ciphers: map[string]*models.Cipher{}}
}

func (r *fakeCipherRepo) Create(ctx context.Context, cipher *models.Cipher) error {
	r.ciphers[cipher.ID] = cipher
	r.created = append(r.created, cipher)
	return nil
}

func (r *fakeCipherRepo) GetByID(ctx context.Context, id, userID string) (*models.Cipher, error) {
	cipher, ok := r.ciphers[id]
	if !ok || cipher.UserID == nil || *cipher.UserID != userID {
		return nil, &domain.NotFoundError{Message: "Cipher not found"}
	}
	return cipher, nil
}

func (r *fakeCipherRepo) Update(ctx context.Context, cipher *models.Cipher) error {
	if _, ok := r.ciphers[cipher.ID]; !ok {
		return &domain.NotFoundError{Message: "Cipher not found"}
	}
	r.ciphers[cipher.ID] = cipher
	return nil
}

func (r *fakeCipherRepo) Delete(ctx context.Context, id, userID string) error {
	if _, ok := r.ciphers[id]; !ok {
		return &domain.NotFoundError{Message: "Cipher not found"}
	}
	delete(r.ciphers, id)
	return nil
}

func (r *fakeCipherRepo) ListByUser(ctx context.Context, userID string) ([]*models.Cipher, error) {
	var out []*models.Cipher
	for _, c := range r.ciphers {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCipherRepo) InsertIgnoreOp(cipher *models.Cipher) repositories.BatchOp {
	return repositories.BatchOp{SQL: "insert-cipher", Args: []interface{}{cipher}}
}

type fakeFolderRepo struct {
	folders map[string]*models.Folder
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: map[string]*models.Folder{}}
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	r.folders[folder.ID] = folder
	return nil
}

func (r *fakeFolderRepo) Update(ctx context.Context, folder *models.Folder) error {
	if _, ok := r.folders[folder.ID]; !ok {
		return &domain.NotFoundError{Message: "Folder not found"}
	}
	r.folders[folder.ID] = folder
	return nil
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id, userID string) error {
	if _, ok := r.folders[id]; !ok {
		return &domain.NotFoundError{Message: "Folder not found"}
	}
	delete(r.folders, id)
	return nil
}

func (r *fakeFolderRepo) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	var out []*models.Folder
	for _, f := range r.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) InsertIgnoreOp(folder *models.Folder) repositories.BatchOp {
	return repositories.BatchOp{SQL: "insert-folder", Args: []interface{}{folder}}
}

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return &domain.BadRequestError{Message: "Email is already registered"}
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, &domain.NotFoundError{Message: "User not found"}
	}
	return user, nil
}

func (r *fakeUserRepo) KdfIterationsByEmail(ctx context.Context, email string) (*int, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &user.KdfIterations, nil
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// recordingExecutor captures every ExecuteBatched call so tests can assert
// phase ordering and zero-write guarantees.
type recordingExecutor struct {
	calls [][]repositories.BatchOp
	fail  error
}

func (e *recordingExecutor) ExecuteBatched(ctx context.Context, ops []repositories.BatchOp, chunkSize int) error {
	if e.fail != nil {
		return e.fail
	}
	e.calls = append(e.calls, ops)
	return nil
}
