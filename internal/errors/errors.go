// Package errors defines the error kinds shared across the catalog core.
package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup miss in the store or the catalog provider.
var ErrNotFound = errors.New("not found")

// ErrDuplicateItem signals a list add conflict on either identifier.
var ErrDuplicateItem = errors.New("item already in list")

// UpstreamError represents a non-success response or transport failure
// from the catalog provider. Status is zero for network failures.
type UpstreamError struct {
	Status  int
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error (status %d): %s (caused by: %v)", e.Status, e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// NewUpstreamError creates an UpstreamError for a non-success HTTP status.
func NewUpstreamError(status int, message string) *UpstreamError {
	return &UpstreamError{Status: status, Message: message}
}

// NewUpstreamFailure creates an UpstreamError for a transport-level failure.
func NewUpstreamFailure(message string, cause error) *UpstreamError {
	return &UpstreamError{Message: message, Cause: cause}
}

// ValidationError signals a missing required identifier or field on input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
