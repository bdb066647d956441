package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts validator.ValidationErrors into one message per field,
// keyed by the lower-cased field name used in the JSON payload. Every failing
// field is reported; there is no short-circuit on the first error.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		out["request"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		if _, exists := out[field]; !exists {
			out[field] = formatSingleError(e)
		}
	}

	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Este campo es obligatorio"

	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", e.Param())

	case "max":
		return fmt.Sprintf("Debe tener como máximo %s caracteres", e.Param())

	case "email_dotted", "email":
		return "Email inválido"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("Validación fallida (%s)", e.Tag())
	}
}
