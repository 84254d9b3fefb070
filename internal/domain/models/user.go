package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultKdfIterations is reported to clients that prelogin with an unknown
// email, so the response does not reveal whether an account exists.
const DefaultKdfIterations = 600000

// User holds account material. Every cryptographic field is opaque to the
// server: the master password hash arrives pre-hashed from the client and
// the keys are ciphertext.
type User struct {
	ID                 string
	Name               *string
	Email              string
	EmailVerified      bool
	MasterPasswordHash string
	MasterPasswordHint *string
	Key                string
	PrivateKey         string
	PublicKey          string
	KdfType            int
	KdfIterations      int
	SecurityStamp      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PreloginRequest asks for the KDF parameters of an account.
type PreloginRequest struct {
	Email string `json:"email"`
}

func (r PreloginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
	)
}

// PreloginResponse carries KDF metadata only; kdf 0 is PBKDF2.
type PreloginResponse struct {
	Kdf           int `json:"kdf"`
	KdfIterations int `json:"kdfIterations"`
}

// KeyPair is the client-generated asymmetric key material.
type KeyPair struct {
	PublicKey           string `json:"publicKey"`
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
}

// RegisterRequest finishes account registration.
type RegisterRequest struct {
	Name               *string `json:"name"`
	Email              string  `json:"email"`
	MasterPasswordHash string  `json:"masterPasswordHash"`
	MasterPasswordHint *string `json:"masterPasswordHint"`
	Kdf                int     `json:"kdf"`
	KdfIterations      int     `json:"kdfIterations"`
	UserSymmetricKey   string  `json:"userSymmetricKey"`
	UserAsymmetricKeys KeyPair `json:"userAsymmetricKeys"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.MasterPasswordHash, validation.Required),
		validation.Field(&r.UserSymmetricKey, validation.Required),
	)
}
