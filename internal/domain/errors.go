package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound covers both "no record" and "record exists but inactive".
	// Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrMalformedContent means a stored content blob is missing required
	// fields. Surfaced to end users as not-found so internal shape details
	// never leak.
	ErrMalformedContent = errors.New("malformed invitation content")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError is an expected user-input failure (upload type/size,
// email format, RSVP fields). It is returned as a structured result and
// mapped to a 400 response, never treated as an internal error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError returns a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
