package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Flag is a bool that additionally accepts the integers 0 and 1 on the wire.
// Some legacy clients send favorite/edit/viewPassword as 0/1 instead of
// booleans. Any other integer is a decode error.
type Flag bool

// UnmarshalJSON implements the loose boolean contract.
func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("invalid boolean value %s: want true, false, 0 or 1", b)
	}
	return nil
}

// CipherRequest is the client payload for creating or updating a vault item.
// Field matching is case-insensitive under encoding/json, which also covers
// the PascalCase variants older clients send.
type CipherRequest struct {
	Type                  CipherType      `json:"type"`
	FolderID              *string         `json:"folderId"`
	OrganizationID        *string         `json:"organizationId"`
	Name                  string          `json:"name"`
	Notes                 *string         `json:"notes"`
	Favorite              Flag            `json:"favorite"`
	Login                 json.RawMessage `json:"login"`
	Card                  json.RawMessage `json:"card"`
	Identity              json.RawMessage `json:"identity"`
	SecureNote            json.RawMessage `json:"secureNote"`
	Fields                json.RawMessage `json:"fields"`
	PasswordHistory       json.RawMessage `json:"passwordHistory"`
	Reprompt              *int            `json:"reprompt"`
	LastKnownRevisionDate *string         `json:"lastKnownRevisionDate"`
	// Key carries the item encryption key during key rotation scenarios.
	Key *string `json:"key"`
}

// Validate checks the request against the canonical model's invariants.
func (r CipherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.Min(CipherTypeLogin), validation.Max(CipherTypeIdentity)),
	)
}

// CipherData converts the request into the canonical payload, normalizing
// explicit JSON nulls to absent so storage and round-trips stay consistent.
func (r CipherRequest) CipherData() CipherData {
	return CipherData{
		Name:            r.Name,
		Notes:           r.Notes,
		Login:           presentRaw(r.Login),
		Card:            presentRaw(r.Card),
		Identity:        presentRaw(r.Identity),
		SecureNote:      presentRaw(r.SecureNote),
		Fields:          presentRaw(r.Fields),
		PasswordHistory: presentRaw(r.PasswordHistory),
		Reprompt:        r.Reprompt,
	}
}

// presentRaw maps an absent or literal-null raw value to nil.
func presentRaw(m json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(m)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return m
}

// CreateCipherRequest is the envelope for cipher creation. Clients send
// either a flat shape (fields directly on the object) or a nested
// {"cipher": {...}, "collectionIds": [...]} shape; both decode to the same
// canonical structure.
type CreateCipherRequest struct {
	Cipher        CipherRequest
	CollectionIDs []string
}

// UnmarshalJSON accepts both envelope shapes.
func (r *CreateCipherRequest) UnmarshalJSON(b []byte) error {
	var envelope struct {
		Cipher        *CipherRequest `json:"cipher"`
		CollectionIDs []string       `json:"collectionIds"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	if envelope.Cipher != nil {
		r.Cipher = *envelope.Cipher
		r.CollectionIDs = envelope.CollectionIDs
		return nil
	}

	// Flat shape: the cipher fields live directly on the envelope.
	var flat CipherRequest
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}
	r.Cipher = flat
	r.CollectionIDs = envelope.CollectionIDs
	return nil
}

// cipherPermissions mirrors the legacy edit flag for clients since v2025.6.0
// that expect a permissions block.
type cipherPermissions struct {
	Delete  bool `json:"delete"`
	Restore bool `json:"restore"`
}

// CipherResponse is the exact field set, ordering and nullability contract
// the clients depend on. The four payload variants are always present; the
// three not selected by Type are explicit null, never omitted.
type CipherResponse struct {
	Object              string            `json:"object"`
	ID                  string            `json:"id"`
	UserID              *string           `json:"userId,omitempty"`
	OrganizationID      *string           `json:"organizationId"`
	FolderID            *string           `json:"folderId"`
	Type                CipherType        `json:"type"`
	Favorite            bool              `json:"favorite"`
	Edit                bool              `json:"edit"`
	ViewPassword        bool              `json:"viewPassword"`
	Permissions         cipherPermissions `json:"permissions"`
	OrganizationUseTotp bool              `json:"organizationUseTotp"`
	CollectionIDs       []string          `json:"collectionIds"`
	RevisionDate        string            `json:"revisionDate"`
	CreationDate        string            `json:"creationDate"`
	DeletedDate         *string           `json:"deletedDate"`
	Name                json.RawMessage   `json:"name"`
	Notes               json.RawMessage   `json:"notes"`
	Fields              json.RawMessage   `json:"fields"`
	PasswordHistory     json.RawMessage   `json:"passwordHistory"`
	Reprompt            json.RawMessage   `json:"reprompt"`
	Login               json.RawMessage   `json:"login"`
	SecureNote          json.RawMessage   `json:"secureNote"`
	Card                json.RawMessage   `json:"card"`
	Identity            json.RawMessage   `json:"identity"`
}

// Response encodes the canonical item for the client.
//
// A stored payload that is not a JSON object degrades every payload-derived
// field to null instead of failing the whole response.
func (c *Cipher) Response() *CipherResponse {
	resp := &CipherResponse{
		Object:         "cipher",
		ID:             c.ID,
		UserID:         c.UserID,
		OrganizationID: c.OrganizationID,
		FolderID:       c.FolderID,
		Type:           c.Type,
		Favorite:       c.Favorite,
		Edit:           true,
		ViewPassword:   true,
		Permissions:    cipherPermissions{Delete: true, Restore: true},
		RevisionDate:   c.UpdatedAt.UTC().Format(APITimeLayout),
		CreationDate:   c.CreatedAt.UTC().Format(APITimeLayout),
	}
	if c.DeletedAt != nil {
		deleted := c.DeletedAt.UTC().Format(APITimeLayout)
		resp.DeletedDate = &deleted
	}
	if len(c.CollectionIDs) > 0 {
		resp.CollectionIDs = c.CollectionIDs
	}

	var data struct {
		Name            json.RawMessage `json:"name"`
		Notes           json.RawMessage `json:"notes"`
		Fields          json.RawMessage `json:"fields"`
		PasswordHistory json.RawMessage `json:"passwordHistory"`
		Reprompt        json.RawMessage `json:"reprompt"`
		Login           json.RawMessage `json:"login"`
		SecureNote      json.RawMessage `json:"secureNote"`
		Card            json.RawMessage `json:"card"`
		Identity        json.RawMessage `json:"identity"`
	}
	raw := bytes.TrimSpace(c.Data)
	if len(raw) == 0 || raw[0] != '{' || json.Unmarshal(raw, &data) != nil {
		return resp
	}

	resp.Name = data.Name
	resp.Notes = data.Notes
	resp.Fields = data.Fields
	resp.PasswordHistory = data.PasswordHistory
	resp.Reprompt = data.Reprompt
	if resp.Reprompt == nil {
		resp.Reprompt = json.RawMessage("0")
	}

	// Exactly one payload variant is populated, selected by Type.
	switch c.Type {
	case CipherTypeLogin:
		resp.Login = data.Login
	case CipherTypeSecureNote:
		resp.SecureNote = data.SecureNote
	case CipherTypeCard:
		resp.Card = data.Card
	case CipherTypeIdentity:
		resp.Identity = data.Identity
	}

	return resp
}
