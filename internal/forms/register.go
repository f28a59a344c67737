package forms

import (
	"strings"

	"github.com/mddlabs/mddctl/pkg/api"
)

// RegisterForm validates a new account: username of at least 3 characters,
// a syntactically valid email, and a password of at least 8 characters
// containing a digit, a lowercase letter, an uppercase letter, and a
// special character.
type RegisterForm struct {
	Username Field
	Email    Field
	Password Field
}

func NewRegisterForm() *RegisterForm {
	return &RegisterForm{}
}

func (f *RegisterForm) request() api.RegisterRequest {
	return api.RegisterRequest{
		Username: strings.TrimSpace(f.Username.Value()),
		Email:    strings.TrimSpace(f.Email.Value()),
		Password: f.Password.Value(),
	}
}

// Validate refreshes per-field errors and reports whole-form validity.
func (f *RegisterForm) Validate() bool {
	errs := structErrors(f.request())
	f.Username.setErrors(errs["Username"])
	f.Email.setErrors(errs["Email"])
	f.Password.setErrors(errs["Password"])
	return len(errs) == 0
}

func (f *RegisterForm) Valid() bool {
	return f.Validate()
}

// Submit touches every field and yields the request payload only when the
// whole form is valid.
func (f *RegisterForm) Submit() (api.RegisterRequest, error) {
	f.Username.Touch()
	f.Email.Touch()
	f.Password.Touch()
	if !f.Validate() {
		return api.RegisterRequest{}, ErrInvalidForm
	}
	return f.request(), nil
}

// Errors lists the messages of touched invalid fields by display name.
func (f *RegisterForm) Errors() map[string][]string {
	out := make(map[string][]string)
	collectField(out, "username", &f.Username)
	collectField(out, "email", &f.Email)
	collectField(out, "password", &f.Password)
	return out
}
