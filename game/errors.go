package game

import "errors"

// Failures are model-definition errors: they are returned to the immediate
// caller and never retried.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
)
