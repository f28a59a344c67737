// Package forms holds the client-side validated input structures that
// produce request payloads for the gateways. Validation is purely local:
// a form only yields a payload once every field rule passes, so an invalid
// submit never reaches the network.
package forms

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm is returned by Submit when any field rule fails.
var ErrInvalidForm = errors.New("form is invalid")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("userpassword", validatePassword); err != nil {
		panic(fmt.Sprintf("failed to register password rule: %v", err))
	}
	return v
}

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// validatePassword requires at least one digit, one lowercase letter, one
// uppercase letter, and one character from passwordSpecialChars. Length is
// enforced separately by the min tag.
func validatePassword(fl validator.FieldLevel) bool {
	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}

// structErrors validates a request payload and groups the messages by the
// struct field name.
func structErrors(req any) map[string][]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	out := make(map[string][]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], message(fe))
		}
		return out
	}
	out[""] = []string{err.Error()}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "email":
		return "must be a valid email address"
	case "userpassword":
		return "must contain a digit, a lowercase letter, an uppercase letter, and a special character"
	default:
		return fmt.Sprintf("is not valid (%s)", fe.Tag())
	}
}
