package config

import (
	"fmt"
)

// ValidationError represents an invalid construction argument.
type ValidationError struct {
	// Field is the name of the invalid argument
	Field string

	// Message describes the validation error
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes ValidationError match ErrValidation.
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// validateFilename checks the filename before anything touches the
// filesystem
func validateFilename(filename string) error {
	if filename == "" {
		return ValidationError{
			Field:   "filename",
			Message: "filename must be non-empty string",
		}
	}
	return nil
}
