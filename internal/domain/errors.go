package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when a campaign status change violates the
// transition table. The campaign is left unchanged.
var ErrInvalidTransition = errors.New("invalid campaign status transition")

// ErrQuotaExceeded is returned when recording a send would push a campaign past
// its daily send limit. Callers should treat the lead as skipped for this
// send-day and retry on a later one.
var ErrQuotaExceeded = errors.New("daily send quota exceeded")

// ValidationError reports every violated field of an input, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidationError returns a ValidationError with the given violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}
