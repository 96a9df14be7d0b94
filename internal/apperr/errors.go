package apperr

import "errors"

var (
	ErrValidation       = errors.New("invalid input")
	ErrAuth             = errors.New("invalid credentials")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrGeneration       = errors.New("generation failed")
	ErrStoreUnavailable = errors.New("database connection not available")
)
