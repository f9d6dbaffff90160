package domain

import "errors"

// Sentinel errors shared across layers. Services wrap these with
// context; the API layer maps them to HTTP status codes.
var (
	// ErrNotFound means the referenced report does not exist (or is not
	// of the type the operation requires).
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means a claim transition violates the state
	// machine: wrong current status, wrong report type, or an illegal
	// target value.
	ErrInvalidState = errors.New("invalid state")

	// ErrForbidden means the caller is not allowed to perform the
	// operation, e.g. claiming their own found report.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation means the request payload itself is malformed.
	ErrValidation = errors.New("validation error")
)
