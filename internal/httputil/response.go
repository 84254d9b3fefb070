package httputil

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code.
// It marshals first so an encoding failure cannot produce a partial body
// after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// ErrorModel is the error body the vault clients expect.
type ErrorModel struct {
	Object           string      `json:"object"`
	Message          string      `json:"message"`
	ValidationErrors interface{} `json:"validationErrors"`
}

// RespondError writes an error response in the client error model.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(ErrorModel{
		Object:  "error",
		Message: message,
	})
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
