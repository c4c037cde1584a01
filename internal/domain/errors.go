package domain

import "errors"

// Sentinel errors shared by repositories and the import/export layer.
// Callers match them with errors.Is; detail is added with %w wrapping.
var (
	// repository errors
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// auth errors
	ErrBadCredentials = errors.New("invalid credentials")

	// import errors (unreadable or unsupported file)
	ErrBadFormat = errors.New("unsupported or unreadable file")
)
