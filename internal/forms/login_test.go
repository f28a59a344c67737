package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_RequiredAfterTrim(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password string
		valid    bool
	}{
		{name: "both present", user: "jane@mail.com", password: "secret123", valid: true},
		{name: "missing user", user: "", password: "secret123", valid: false},
		{name: "missing password", user: "jane@mail.com", password: "", valid: false},
		{name: "whitespace only user", user: "   ", password: "secret123", valid: false},
		{name: "whitespace only password", user: "jane@mail.com", password: "   ", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewLoginForm()
			form.UsernameOrEmail.Set(tt.user)
			form.Password.Set(tt.password)

			assert.Equal(t, tt.valid, form.Valid())
		})
	}
}

func TestLoginForm_SubmitTrimsIdentifierOnly(t *testing.T) {
	form := NewLoginForm()
	form.UsernameOrEmail.Set(" jane@mail.com ")
	form.Password.Set("secret 123")

	req, err := form.Submit()

	require.NoError(t, err)
	assert.Equal(t, "jane@mail.com", req.UsernameOrEmail)
	assert.Equal(t, "secret 123", req.Password)
}

func TestLoginForm_InvalidSubmitYieldsNoPayload(t *testing.T) {
	form := NewLoginForm()
	form.Password.Set("secret123")

	_, err := form.Submit()

	require.ErrorIs(t, err, ErrInvalidForm)
	assert.Contains(t, form.Errors(), "username or email")
}
