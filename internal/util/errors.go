package util

import "errors"

// Error kinds returned by the data-access layer. Callers match them with
// errors.Is; the wrapped chain keeps the driver error for logging.
var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnectivity        = errors.New("database unavailable")
	ErrInvalidInput        = errors.New("invalid input")
)

var (
	ErrUserIDTaken        = errors.New("user id already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
