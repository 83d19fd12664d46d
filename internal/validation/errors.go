package validation

import (
	"errors"
	"fmt"
)

// Common input validation errors
var (
	// ErrRequired is returned when a mandatory text field is empty or whitespace.
	ErrRequired = errors.New("value is required")

	// ErrOutOfRange is returned when a numeric field falls outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidOption is returned when an answer is not one of the accepted choices.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidNumber is returned when text was supplied where a number is expected.
	ErrInvalidNumber = errors.New("value is not a valid number")
)

// ValidationError represents a rejected input field. Message is the text shown
// to the operator; Err is one of the sentinel errors above.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling.
func (e *ValidationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// Message returns the operator-facing text of a validation error, or the
// plain error text for anything else.
func Message(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return err.Error()
}
