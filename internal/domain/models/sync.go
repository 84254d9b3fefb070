package models

// ProfileResponse is the account profile embedded in a sync response.
type ProfileResponse struct {
	Object        string  `json:"object"`
	ID            string  `json:"id"`
	Name          *string `json:"name"`
	Email         string  `json:"email"`
	EmailVerified bool    `json:"emailVerified"`
	Premium       bool    `json:"premium"`
	Key           string  `json:"key"`
	PrivateKey    string  `json:"privateKey"`
	SecurityStamp string  `json:"securityStamp"`
	Organizations []any   `json:"organizations"`
}

// Profile encodes the user's profile for the client. Premium is always
// reported so clients do not gate vault features.
func (u *User) Profile() *ProfileResponse {
	return &ProfileResponse{
		Object:        "profile",
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Premium:       true,
		Key:           u.Key,
		PrivateKey:    u.PrivateKey,
		SecurityStamp: u.SecurityStamp,
		Organizations: []any{},
	}
}

// SyncResponse is the full vault snapshot returned by GET /api/sync.
type SyncResponse struct {
	Object      string            `json:"object"`
	Profile     *ProfileResponse  `json:"profile"`
	Folders     []*FolderResponse `json:"folders"`
	Collections []any             `json:"collections"`
	Ciphers     []*CipherResponse `json:"ciphers"`
	Domains     any               `json:"domains"`
	Policies    []any             `json:"policies"`
	Sends       []any             `json:"sends"`
}
