package router

import "github.com/mddlabs/mddctl/internal/client/session"

// Guard is the predicate consulted before a protected route is activated.
// It reads the session store synchronously and performs no network call: it
// trusts whatever the store currently holds.
type Guard struct {
	sessions *session.Store
}

func NewGuard(sessions *session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// CanEnter reports whether navigation to a protected route is allowed.
func (g *Guard) CanEnter() bool {
	return g.sessions.Read().LoggedIn
}
