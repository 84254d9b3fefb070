package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"vaultgate/internal/domain"
	"vaultgate/internal/httputil"
)

// handleError maps domain errors to HTTP responses. Errors that do not carry
// a status code are logged and reported as a generic 500 so internal details
// never leak to clients.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode() >= http.StatusInternalServerError {
			logger.Error("request failed", "error", err)
		}
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	logger.Error("unhandled error", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
}
