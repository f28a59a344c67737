package api

// LoginRequest represents a login attempt with username or email
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,userpassword"`
}

// UserUpdateRequest updates the current user's profile.
// All fields are optional-overwrite: an empty field means "do not change".
type UserUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,userpassword"`
}

// AuthResponse is returned by login and register.
// The session itself travels in a cookie; the body is informational only.
type AuthResponse struct {
	Token string `json:"token,omitempty"`
}

// ErrorResponse represents an error payload from the server
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
