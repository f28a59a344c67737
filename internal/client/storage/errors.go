package storage

import "errors"

// Common client storage errors
var (
	// ErrDraftNotFound indicates that no draft exists under the given ID
	ErrDraftNotFound = errors.New("draft not found")

	// ErrSessionNotFound indicates that no session cookies are stored
	ErrSessionNotFound = errors.New("session not found")
)
