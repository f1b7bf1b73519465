package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError turns validator.ValidationErrors into one message per
// failed field, covering the tags the request DTOs use. Anything else comes
// back as "<field> is invalid (<tag>)".
func FormatValidationError(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must have minimum length %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must have maximum length %s", field, e.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "uuid4":
			msgs = append(msgs, fmt.Sprintf("%s must be a UUID", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, e.Tag()))
		}
	}
	return msgs
}

// ErrorMessage flattens a validation error into a single response string.
// Non-validator errors pass through unchanged.
func ErrorMessage(err error) string {
	if msgs := FormatValidationError(err); len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
