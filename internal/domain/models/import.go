package models

// ImportFolder is one folder descriptor in a bulk import payload. The id is
// client-supplied; retaining it keeps reimports idempotent under the
// insert-ignore write semantics.
type ImportFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ImportCipher is one item descriptor in a bulk import payload. EncryptedFor
// names the principal the item was encrypted for and must match the
// authenticated principal.
type ImportCipher struct {
	CipherRequest
	EncryptedFor string `json:"encryptedFor"`
}

// FolderRelationship links a cipher to a folder by position in the two input
// sequences, not by id. This positional contract is fixed by legacy clients
// and must be preserved exactly.
type FolderRelationship struct {
	Key   int `json:"key"`   // index into Ciphers
	Value int `json:"value"` // index into Folders
}

// ImportRequest is one bulk import payload.
type ImportRequest struct {
	Folders             []ImportFolder       `json:"folders"`
	Ciphers             []ImportCipher       `json:"ciphers"`
	FolderRelationships []FolderRelationship `json:"folderRelationships"`
}
