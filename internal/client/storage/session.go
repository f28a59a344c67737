package storage

import "context"

// Cookie is the persisted part of a session cookie. Only the name/value pair
// is replayed to the server; attributes like path and expiry are the
// server's concern and get re-issued on the next response.
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SessionStorage persists the server session cookies between process runs.
// Without it every invocation would start anonymous and the startup probe
// could never find an existing session.
type SessionStorage interface {
	// SaveSession stores the current session cookies, replacing any
	// previous set. An empty slice clears the stored session.
	SaveSession(ctx context.Context, cookies []Cookie) error

	// GetSession retrieves the stored session cookies.
	// Returns ErrSessionNotFound if none are stored
	GetSession(ctx context.Context) ([]Cookie, error)

	// DeleteSession removes the stored session cookies
	DeleteSession(ctx context.Context) error
}
