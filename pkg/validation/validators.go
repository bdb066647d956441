package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Stricter than the builtin "email" tag: the domain must contain a dot,
// so bare host names like user@localhost are rejected
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_dotted", EmailDotted)
}

// EmailDotted validates the local@domain.tld address shape
func EmailDotted(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}
