package session

import (
	"log/slog"
	"sync"
)

// Session is the client's belief about authentication state.
// Username is empty exactly when LoggedIn is false: every transition to a
// logged-in state carries the username in the same atomic update.
type Session struct {
	Username string
	LoggedIn bool
}

// Observer is notified synchronously after every session mutation.
type Observer func(Session)

// Store is the single source of truth for "am I logged in, as whom".
// It has one writer role (the auth gateway) and many readers (guard, CLI,
// bootstrap). Mutations carry a generation token issued by Begin so that a
// response arriving after a newer request was issued is discarded instead of
// clobbering the store (overlapping auth calls race by resolution order
// otherwise).
type Store struct {
	mu        sync.Mutex
	session   Session
	observers []Observer
	issued    uint64
}

func NewStore() *Store {
	return &Store{}
}

// Read returns the current session snapshot.
func (s *Store) Read() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe registers an observer. Observers are called synchronously, in
// subscription order, after every mutation.
func (s *Store) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Begin issues a generation token for a pending auth call. The matching
// mutation is applied only while no newer generation has been issued.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// SetAuthenticated records a successful authentication as username.
// Returns false if the generation is stale and the mutation was discarded.
func (s *Store) SetAuthenticated(gen uint64, username string) bool {
	return s.apply(gen, Session{LoggedIn: true, Username: username})
}

// SetUnauthenticated clears the session.
// Returns false if the generation is stale and the mutation was discarded.
func (s *Store) SetUnauthenticated(gen uint64) bool {
	return s.apply(gen, Session{})
}

func (s *Store) apply(gen uint64, next Session) bool {
	s.mu.Lock()
	if gen != s.issued {
		s.mu.Unlock()
		slog.Debug("discarding stale session update", "generation", gen, "issued", s.issued)
		return false
	}
	s.session = next
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
	return true
}
