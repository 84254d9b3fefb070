package handler

import (
	"net/http"

	"vaultgate/internal/httputil"
)

// ConfigHandler serves the server capability document clients probe before
// login.
type ConfigHandler struct {
	baseURL string
}

func NewConfigHandler(baseURL string) *ConfigHandler {
	return &ConfigHandler{baseURL: baseURL}
}

type serverConfigResponse struct {
	Object        string            `json:"object"`
	Version       string            `json:"version"`
	GitHash       *string           `json:"gitHash"`
	Server        *string           `json:"server"`
	Environment   configEnvironment `json:"environment"`
	FeatureStates map[string]bool   `json:"featureStates"`
}

type configEnvironment struct {
	CloudRegion   *string `json:"cloudRegion"`
	Vault         string  `json:"vault"`
	API           string  `json:"api"`
	Identity      string  `json:"identity"`
	Notifications string  `json:"notifications"`
	SSO           string  `json:"sso"`
}

// Config handles GET /api/config. The version must be recent enough for
// clients to enable current features; everything is served from this one
// origin.
func (h *ConfigHandler) Config(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, serverConfigResponse{
		Object:  "config",
		Version: "2025.6.0",
		Environment: configEnvironment{
			Vault:         h.baseURL,
			API:           h.baseURL + "/api",
			Identity:      h.baseURL + "/identity",
			Notifications: h.baseURL + "/notifications",
			SSO:           h.baseURL + "/sso",
		},
		FeatureStates: map[string]bool{},
	})
}
