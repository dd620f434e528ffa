// ABOUTME: Error types and handling for the weeks library
// ABOUTME: Provides structured errors with context for library operations

package weeks

import (
	"errors"
	"fmt"

	coreerrors "weekcal-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates malformed input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeOutOfRange indicates a week or year outside its domain
	ErrorTypeOutOfRange ErrorType = "out_of_range"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// fromCore wraps an error from the core packages, keeping it reachable
// through errors.As.
func fromCore(err error, message string) error {
	if err == nil {
		return nil
	}
	switch {
	case coreerrors.IsOutOfRange(err):
		return NewError(ErrorTypeOutOfRange, message).WithCause(err)
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, message).WithCause(err)
	}
	return NewError(ErrorTypeInternal, message).WithCause(err)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation) || coreerrors.IsValidation(err)
}

// IsOutOfRangeError checks if an error reports a week or year out of range
func IsOutOfRangeError(err error) bool {
	return hasType(err, ErrorTypeOutOfRange) || coreerrors.IsOutOfRange(err)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}
