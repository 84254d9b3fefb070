package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a record is absent for the requesting owner.
	// Single-record ownership checks report NotFound, so "not yours" is
	// indistinguishable from "doesn't exist" on those paths.
	NotFoundError struct {
		Message string
	}

	// BadRequestError indicates a malformed payload or an out-of-domain value
	BadRequestError struct {
		Message string
	}

	// UnauthorizedError indicates a failed ownership or allow-list check
	UnauthorizedError struct {
		Message string
	}

	// StorageError wraps a persistence-layer failure. The underlying detail
	// is logged but never surfaced to the client.
	StorageError struct {
		Err error
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *BadRequestError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *StorageError) Error() string      { return "storage failure" }
func (e *StorageError) Unwrap() error      { return e.Err }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *BadRequestError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *StorageError) StatusCode() int      { return http.StatusInternalServerError }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage failure")
)

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *BadRequestError) Is(target error) bool   { return target == ErrBadRequest }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *StorageError) Is(target error) bool      { return target == ErrStorage }
