package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrMatchAmbiguous marks a chapter group that could not be matched to a
	// single catalog entry. Such groups are skipped and reported, never guessed.
	ErrMatchAmbiguous = errors.New("ambiguous chapter match")

	// ErrBackendUnavailable is returned by the full-text backend when it cannot
	// serve a request. Callers recover locally; it never reaches the API.
	ErrBackendUnavailable = errors.New("search backend unavailable")

	// ErrDuplicateKey is fatal for an import batch: the composite id could not
	// be disambiguated within the configured suffix range.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ErrRebuildInProgress is returned when a catalog rebuild for the same book
// is already running.
var ErrRebuildInProgress = fmt.Errorf("catalog rebuild in progress: %w", ErrConflict)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
