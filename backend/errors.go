package backend

import "errors"

var (
	// ErrValidation is returned when a required field is missing or invalid
	ErrValidation = errors.New("validation rejected")
	// ErrNotFound is returned when no record matches the given key
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is returned when a query status change is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")
)
