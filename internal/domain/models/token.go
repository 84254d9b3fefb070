package models

// TokenResponse is the password-grant response. The OAuth fields are
// snake_case and the Bitwarden extension fields PascalCase, as the clients
// expect.
type TokenResponse struct {
	AccessToken         string `json:"access_token"`
	ExpiresIn           int    `json:"expires_in"`
	TokenType           string `json:"token_type"`
	Key                 string `json:"Key"`
	PrivateKey          string `json:"PrivateKey"`
	Kdf                 int    `json:"Kdf"`
	KdfIterations       int    `json:"KdfIterations"`
	ResetMasterPassword bool   `json:"ResetMasterPassword"`
	Scope               string `json:"scope"`
}
