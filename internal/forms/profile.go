package forms

import (
	"strings"

	"github.com/mddlabs/mddctl/pkg/api"
)

// ProfileForm validates a profile update. Every field is optional-overwrite:
// a field left empty means "do not change", a non-empty field obeys the
// registration rules.
type ProfileForm struct {
	Username Field
	Email    Field
	Password Field
}

func NewProfileForm() *ProfileForm {
	return &ProfileForm{}
}

func (f *ProfileForm) request() api.UserUpdateRequest {
	return api.UserUpdateRequest{
		Username: strings.TrimSpace(f.Username.Value()),
		Email:    strings.TrimSpace(f.Email.Value()),
		Password: f.Password.Value(),
	}
}

func (f *ProfileForm) Validate() bool {
	errs := structErrors(f.request())
	f.Username.setErrors(errs["Username"])
	f.Email.setErrors(errs["Email"])
	f.Password.setErrors(errs["Password"])
	return len(errs) == 0
}

func (f *ProfileForm) Valid() bool {
	return f.Validate()
}

func (f *ProfileForm) Submit() (api.UserUpdateRequest, error) {
	f.Username.Touch()
	f.Email.Touch()
	f.Password.Touch()
	if !f.Validate() {
		return api.UserUpdateRequest{}, ErrInvalidForm
	}
	return f.request(), nil
}

func (f *ProfileForm) Errors() map[string][]string {
	out := make(map[string][]string)
	collectField(out, "username", &f.Username)
	collectField(out, "email", &f.Email)
	collectField(out, "password", &f.Password)
	return out
}
