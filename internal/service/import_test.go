package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultgate/internal/domain"
	"vaultgate/internal/domain/models"
)

const importUser = "user-1"

func importCipher(name string) models.ImportCipher {
	return models.ImportCipher{
		CipherRequest: models.CipherRequest{
			Type: models.CipherTypeLogin,
			Name: name,
		},
		EncryptedFor: importUser,
	}
}

// recordedFolders and recordedCiphers unpack the records the fakes put into
// their batch op args.
func recordedFolders(t *testing.T, exec *recordingExecutor) []*models.Folder {
	t.Helper()
	require.GreaterOrEqual(t, len(exec.calls), 1)
	var out []*models.Folder
	for _, op := range exec.calls[0] {
		require.Equal(t, "insert-folder", op.SQL)
		out = append(out, op.Args[0].(*models.Folder))
	}
	return out
}

func recordedCiphers(t *testing.T, exec *recordingExecutor) []*models.Cipher {
	t.Helper()
	require.GreaterOrEqual(t, len(exec.calls), 2)
	var out []*models.Cipher
	for _, op := range exec.calls[1] {
		require.Equal(t, "insert-cipher", op.SQL)
		out = append(out, op.Args[0].(*models.Cipher))
	}
	return out
}

func newImportService(exec *recordingExecutor, chunkSize int) *importService {
	svc := NewImportService(newFakeFolderRepo(), newFakeCipherRepo(), exec, chunkSize, discardLogger())
	return svc.(*importService)
}

func TestImportFoldersBeforeCiphers(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{{ID: "f-1", Name: "2.work"}},
		Ciphers: []models.ImportCipher{importCipher("2.a"), importCipher("2.b")},
	})
	require.NoError(t, err)

	require.Len(t, exec.calls, 2)
	assert.Equal(t, "insert-folder", exec.calls[0][0].SQL)
	assert.Equal(t, "insert-cipher", exec.calls[1][0].SQL)
	assert.Len(t, exec.calls[1], 2)
}

func TestImportResolvesFolderRelationships(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{
			{ID: "f-1", Name: "2.work"},
			{ID: "f-2", Name: "2.personal"},
		},
		Ciphers: []models.ImportCipher{importCipher("2.a"), importCipher("2.b")},
		FolderRelationships: []models.FolderRelationship{
			{Key: 1, Value: 0},
		},
	})
	require.NoError(t, err)

	ciphers := recordedCiphers(t, exec)
	require.Len(t, ciphers, 2)
	assert.Nil(t, ciphers[0].FolderID)
	require.NotNil(t, ciphers[1].FolderID)
	assert.Equal(t, "f-1", *ciphers[1].FolderID)
}

func TestImportIgnoresOutOfRangeRelationships(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{{ID: "f-1", Name: "2.work"}},
		Ciphers: []models.ImportCipher{importCipher("2.a")},
		FolderRelationships: []models.FolderRelationship{
			{Key: 5, Value: 0},
			{Key: 0, Value: 9},
			{Key: -1, Value: 0},
		},
	})
	require.NoError(t, err)

	ciphers := recordedCiphers(t, exec)
	require.Len(t, ciphers, 1)
	assert.Nil(t, ciphers[0].FolderID)
}

func TestImportOwnershipMismatchWritesNothing(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	foreign := importCipher("2.theirs")
	foreign.EncryptedFor = "someone-else"

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{{ID: "f-1", Name: "2.work"}},
		Ciphers: []models.ImportCipher{importCipher("2.mine"), foreign},
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, exec.calls)
}

func TestImportInvalidCipherWritesNothing(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	nameless := models.ImportCipher{
		CipherRequest: models.CipherRequest{Type: models.CipherTypeLogin},
		EncryptedFor:  importUser,
	}

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Ciphers: []models.ImportCipher{nameless},
	})

	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Empty(t, exec.calls)
}

func TestImportRetainsClientFolderIDs(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{
			{ID: "client-id", Name: "2.work"},
			{Name: "2.unnamed"},
		},
	})
	require.NoError(t, err)

	folders := recordedFolders(t, exec)
	require.Len(t, folders, 2)
	assert.Equal(t, "client-id", folders[0].ID)
	assert.NotEmpty(t, folders[1].ID)
	assert.Equal(t, importUser, folders[0].UserID)
}

func TestImportSharedTimestamp(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Folders: []models.ImportFolder{{ID: "f-1", Name: "2.work"}, {ID: "f-2", Name: "2.home"}},
		Ciphers: []models.ImportCipher{importCipher("2.a"), importCipher("2.b"), importCipher("2.c")},
	})
	require.NoError(t, err)

	folders := recordedFolders(t, exec)
	ciphers := recordedCiphers(t, exec)

	stamp := folders[0].CreatedAt
	for _, f := range folders {
		assert.Equal(t, stamp, f.CreatedAt)
		assert.Equal(t, stamp, f.UpdatedAt)
	}
	for _, c := range ciphers {
		assert.Equal(t, stamp, c.CreatedAt)
		assert.Equal(t, stamp, c.UpdatedAt)
	}
}

func TestImportEmptyPayload(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{})
	require.NoError(t, err)

	require.Len(t, exec.calls, 2)
	assert.Empty(t, exec.calls[0])
	assert.Empty(t, exec.calls[1])
}

func TestImportCipherFavoriteCoercion(t *testing.T) {
	exec := &recordingExecutor{}
	svc := newImportService(exec, 30)

	fav := importCipher("2.fav")
	fav.Favorite = true

	err := svc.Import(context.Background(), importUser, &models.ImportRequest{
		Ciphers: []models.ImportCipher{fav, importCipher("2.plain")},
	})
	require.NoError(t, err)

	ciphers := recordedCiphers(t, exec)
	assert.True(t, ciphers[0].Favorite)
	assert.False(t, ciphers[1].Favorite)
}
