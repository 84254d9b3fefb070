package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
)

func TestCipherServiceCreate(t *testing.T) {
	repo := newFakeCipherRepo()
	svc := NewCipherService(repo, passthroughTxManager{}, discardLogger())

	cipher, err := svc.Create(context.Background(), "user-1", &models.CreateCipherRequest{
		Cipher: models.CipherRequest{
			Type:  models.CipherTypeLogin,
			Name:  "2.n",
			Login: json.RawMessage(`{"username": "2.u"}`),
		},
		CollectionIDs: []string{"col-1"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, cipher.ID)
	require.NotNil(t, cipher.UserID)
	assert.Equal(t, "user-1", *cipher.UserID)
	assert.Equal(t, []string{"col-1"}, cipher.CollectionIDs)
	assert.Equal(t, cipher.CreatedAt, cipher.UpdatedAt)
	assert.Len(t, repo.created, 1)

	var stored models.CipherData
	require.NoError(t, json.Unmarshal(cipher.Data, &stored))
	assert.Equal(t, "2.n", stored.Name)
}

func TestCipherServiceCreateRejectsInvalid(t *testing.T) {
	svc := NewCipherService(newFakeCipherRepo(), passthroughTxManager{}, discardLogger())

	_, err := svc.Create(context.Background(), "user-1", &models.CreateCipherRequest{
		Cipher: models.CipherRequest{Type: models.CipherTypeLogin},
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCipherServiceUpdatePreservesCreatedAt(t *testing.T) {
	repo := newFakeCipherRepo()
	svc := NewCipherService(repo, passthroughTxManager{}, discardLogger())

	created, err := svc.Create(context.Background(), "user-1", &models.CreateCipherRequest{
		Cipher: models.CipherRequest{Type: models.CipherTypeLogin, Name: "2.n"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "user-1", created.ID, &models.CipherRequest{
		Type: models.CipherTypeLogin,
		Name: "2.renamed",
	})
	require.NoError(t, err)

	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestCipherServiceUpdateForeignRecordIsNotFound(t *testing.T) {
	repo := newFakeCipherRepo()
	svc := NewCipherService(repo, passthroughTxManager{}, discardLogger())

	created, err := svc.Create(context.Background(), "user-1", &models.CreateCipherRequest{
		Cipher: models.CipherRequest{Type: models.CipherTypeLogin, Name: "2.n"},
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "user-2", created.ID, &models.CipherRequest{
		Type: models.CipherTypeLogin,
		Name: "2.stolen",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCipherServiceDeleteMissing(t *testing.T) {
	svc := NewCipherService(newFakeCipherRepo(), passthroughTxManager{}, discardLogger())

	err := svc.Delete(context.Background(), "user-1", "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
