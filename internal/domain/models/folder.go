package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Folder groups vault items for one owner. Items reference folders by value;
// deleting a folder does not cascade to the items pointing at it.
type Folder struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderRequest is the create/update payload. The name is ciphertext like
// everything else the client stores.
type FolderRequest struct {
	Name string `json:"name"`
}

func (r FolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// FolderResponse is the wire shape for a folder.
type FolderResponse struct {
	Object       string `json:"object"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	RevisionDate string `json:"revisionDate"`
}

// Response encodes the folder for the client.
func (f *Folder) Response() *FolderResponse {
	return &FolderResponse{
		Object:       "folder",
		ID:           f.ID,
		Name:         f.Name,
		RevisionDate: f.UpdatedAt.UTC().Format(APITimeLayout),
	}
}
