package domain

import "errors"

// ErrNotFound is returned when a bundle or catalog group does not exist.
// Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation wraps request validation failures. Handlers map it to 422.
var ErrValidation = errors.New("validation error")

// ErrUnavailable wraps catalog backend failures. Handlers map it to 503.
var ErrUnavailable = errors.New("catalog unavailable")

// ErrUnauthorized and ErrForbidden are returned by a catalog feed that
// rejects our credentials (401) or our access (403).
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
