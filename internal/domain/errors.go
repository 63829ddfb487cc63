package domain

import "fmt"

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
