package types

import "errors"

// Domain error taxonomy. The webserver maps these onto HTTP status codes;
// everything below the transport layer only wraps them.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
)
