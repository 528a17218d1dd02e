package Models

import "errors"

// Sentinel errors returned by the query and command operations.
// Controllers match on these with errors.Is to pick a status code;
// everything else is a persistence failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
