package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyUserID is returned when a user ID is required but missing.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyEmail is returned when an email address is required but missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyHashedPassword is returned when a user is missing its password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")

	// ErrEmptyTitle is returned when a task title is required but missing.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of
	// the known status values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError wraps a sentinel error with the field that failed and
// a short reason, so the API layer can produce a useful message without
// exposing internals.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}
