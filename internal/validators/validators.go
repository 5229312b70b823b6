package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UUID validation regex (RFC 4122 v4)
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidUUID checks if the string is a valid RFC 4122 v4 UUID
// Format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
// where x is any hex digit and y is one of 8, 9, A, or B
func IsValidUUID(uuid string) bool {
	if uuid == "" {
		return false
	}
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// FromBindingError converts a gin binding error into field-level validation errors.
// Errors that are not validator errors (e.g. malformed JSON) are returned as a single "body" error.
func FromBindingError(err error) []error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []error{NewValidationError("body", err.Error())}
	}

	result := make([]error, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		result = append(result, NewValidationError(fieldName(fe), tagMessage(fe)))
	}
	return result
}

// fieldName returns the lower-cased struct field name, matching the JSON keys of request bodies
func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// FormatValidationErrors collects multiple validation errors into one message
func FormatValidationErrors(errors []error) string {
	if len(errors) == 0 {
		return ""
	}

	if len(errors) == 1 {
		return errors[0].Error()
	}

	result := "validation errors:\n"
	for i, err := range errors {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}

// HasValidationErrors checks if there are any validation errors
func HasValidationErrors(errors []error) bool {
	return len(errors) > 0
}
