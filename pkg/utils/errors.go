package utils

import "errors"

// Service error taxonomy. Services wrap these with fmt.Errorf("%w: ...")
// and handlers map them to HTTP status codes with errors.Is. Anything not
// matching a sentinel is reported as a generic 500 without internal detail.
var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access denied")
	ErrNotFound           = errors.New("not found")
)
