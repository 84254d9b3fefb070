package service

import (
	"errors"

	"vaultgate/internal/domain"
)

// wrapStorage passes domain errors through and wraps everything else as a
// storage failure so no persistence detail leaks to the client.
func wrapStorage(err error) error {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return &domain.StorageError{Err: err}
}
