package models

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CipherType selects which payload sub-object of a vault item is meaningful.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

// APITimeLayout is the timestamp layout emitted on the wire.
// Millisecond precision, always UTC.
const APITimeLayout = "2006-01-02T15:04:05.000Z"

// Cipher is the canonical, transport-independent form of one vault item.
// The payload in Data is opaque ciphertext structure from the server's
// perspective; the server only routes by Type when encoding responses.
type Cipher struct {
	ID             string
	UserID         *string
	OrganizationID *string
	Type           CipherType
	Data           json.RawMessage
	Favorite       bool
	FolderID       *string
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	// CollectionIDs is echoed on create responses; it is not persisted.
	CollectionIDs []string
}

// CipherData is the canonical payload stored in the ciphers data column.
// All sub-objects are carried as raw JSON; the server never interprets them.
type CipherData struct {
	Name            string          `json:"name"`
	Notes           *string         `json:"notes,omitempty"`
	Login           json.RawMessage `json:"login,omitempty"`
	Card            json.RawMessage `json:"card,omitempty"`
	Identity        json.RawMessage `json:"identity,omitempty"`
	SecureNote      json.RawMessage `json:"secureNote,omitempty"`
	Fields          json.RawMessage `json:"fields,omitempty"`
	PasswordHistory json.RawMessage `json:"passwordHistory,omitempty"`
	Reprompt        *int            `json:"reprompt,omitempty"`
}

// Validate checks the structural invariants of the payload.
func (d CipherData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
	)
}
