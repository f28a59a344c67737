package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mddlabs/mddctl/internal/client/session"
	"github.com/mddlabs/mddctl/pkg/api"
)

//go:generate moq -out backend_mock.go . Backend

// Backend is the slice of the API client the gateway needs.
type Backend interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*api.UserResponse, error)
}

// Service is the auth gateway: each operation performs one network call and
// then exactly one session store mutation (success or failure path, never
// both, never neither). It is the only writer of the session store.
type Service struct {
	api      Backend
	sessions *session.Store
}

func NewService(apiClient Backend, sessions *session.Store) *Service {
	return &Service{
		api:      apiClient,
		sessions: sessions,
	}
}

// Login authenticates against the server. On success the session holds the
// identifier the user logged in with; on failure the session is cleared and
// the server error is returned for display.
func (s *Service) Login(ctx context.Context, req api.LoginRequest) error {
	gen := s.sessions.Begin()

	if _, err := s.api.Login(ctx, req); err != nil {
		s.sessions.SetUnauthenticated(gen)
		return fmt.Errorf("login failed: %w", err)
	}

	s.sessions.SetAuthenticated(gen, req.UsernameOrEmail)
	return nil
}

// Register creates a new account. The session is not touched either way:
// the user still has to log in.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := s.api.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout clears the server-side session. When the call fails the client's
// belief is unknown (the server may or may not still hold a session), so the
// store is reconciled by an immediate probe before the error is propagated.
func (s *Service) Logout(ctx context.Context) error {
	gen := s.sessions.Begin()

	if err := s.api.Logout(ctx); err != nil {
		s.Probe(ctx)
		return fmt.Errorf("logout failed: %w", err)
	}

	s.sessions.SetUnauthenticated(gen)
	return nil
}

// Probe reconciles the store with the server's actual session. A negative
// probe is a normal outcome (first visit, expired cookie), so the error is
// swallowed and only logged. Returns whether a session exists.
func (s *Service) Probe(ctx context.Context) bool {
	gen := s.sessions.Begin()

	user, err := s.api.Me(ctx)
	if err != nil {
		slog.Debug("session probe negative", "error", err)
		s.sessions.SetUnauthenticated(gen)
		return false
	}

	s.sessions.SetAuthenticated(gen, user.Username)
	return true
}
