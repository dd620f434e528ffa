// ABOUTME: Custom error types for the core calendar logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// OutOfRangeError reports a value outside the domain of the named field,
// for example a week number the requested year does not have.
type OutOfRangeError struct {
	Field   string
	Value   int
	Message string
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range: %s", e.Field, e.Value, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewOutOfRange builds an OutOfRangeError
func NewOutOfRange(field string, value int, format string, args ...interface{}) *OutOfRangeError {
	return &OutOfRangeError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsOutOfRange checks if an error is an OutOfRangeError
func IsOutOfRange(err error) bool {
	var rangeErr *OutOfRangeError
	return errors.As(err, &rangeErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
