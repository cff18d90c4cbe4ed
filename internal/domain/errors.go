package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Entity-specific validation errors wrap this sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a surrogate key is malformed or missing.
	ErrInvalidID = errors.New("invalid ID")
)
