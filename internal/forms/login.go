package forms

import (
	"strings"

	"github.com/mddlabs/mddctl/pkg/api"
)

// LoginForm accepts a username or email plus the password. Both fields must
// be non-empty after trimming; credential correctness is the server's call.
type LoginForm struct {
	UsernameOrEmail Field
	Password        Field
}

func NewLoginForm() *LoginForm {
	return &LoginForm{}
}

// Validate refreshes per-field errors and reports whole-form validity.
func (f *LoginForm) Validate() bool {
	errs := structErrors(api.LoginRequest{
		UsernameOrEmail: strings.TrimSpace(f.UsernameOrEmail.Value()),
		Password:        strings.TrimSpace(f.Password.Value()),
	})
	f.UsernameOrEmail.setErrors(errs["UsernameOrEmail"])
	f.Password.setErrors(errs["Password"])
	return len(errs) == 0
}

func (f *LoginForm) Valid() bool {
	return f.Validate()
}

// Submit touches every field and yields the request payload only when the
// whole form is valid. The password is submitted as typed; only the
// identifier is trimmed.
func (f *LoginForm) Submit() (api.LoginRequest, error) {
	f.UsernameOrEmail.Touch()
	f.Password.Touch()
	if !f.Validate() {
		return api.LoginRequest{}, ErrInvalidForm
	}
	return api.LoginRequest{
		UsernameOrEmail: strings.TrimSpace(f.UsernameOrEmail.Value()),
		Password:        f.Password.Value(),
	}, nil
}

// Errors lists the messages of touched invalid fields by display name.
func (f *LoginForm) Errors() map[string][]string {
	out := make(map[string][]string)
	collectField(out, "username or email", &f.UsernameOrEmail)
	collectField(out, "password", &f.Password)
	return out
}
