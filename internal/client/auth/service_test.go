package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mddlabs/mddctl/internal/client/session"
	"github.com/mddlabs/mddctl/pkg/api"
)

func TestService_Login_Success(t *testing.T) {
	sessions := session.NewStore()
	backend := &BackendMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return &api.AuthResponse{}, nil
		},
	}
	svc := NewService(backend, sessions)

	err := svc.Login(context.Background(), api.LoginRequest{
		UsernameOrEmail: "jane@mail.com",
		Password:        "secret123",
	})

	require.NoError(t, err)
	snap := sessions.Read()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "jane@mail.com", snap.Username)
	assert.Len(t, backend.LoginCalls(), 1)
}

// A failed login clears the session regardless of prior state and surfaces
// the server error.
func TestService_Login_Failure_ClearsSession(t *testing.T) {
	sessions := session.NewStore()
	sessions.SetAuthenticated(sessions.Begin(), "previous")

	serverErr := errors.New("server error (401): bad credentials")
	backend := &BackendMock{
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
			return nil, serverErr
		},
	}
	svc := NewService(backend, sessions)

	err := svc.Login(context.Background(), api.LoginRequest{
		UsernameOrEmail: "jane@mail.com",
		Password:        "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, serverErr)
	snap := sessions.Read()
	assert.False(t, snap.LoggedIn)
	assert.Empty(t, snap.Username)
}

func TestService_Register_DoesNotTouchSession(t *testing.T) {
	tests := []struct {
		name       string
		backendErr error
	}{
		{name: "success"},
		{name: "duplicate email", backendErr: errors.New("server error (409): email already in use")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore()
			backend := &BackendMock{
				RegisterFunc: func(ctx context.Context, req api.RegisterRequest) error {
					return tt.backendErr
				},
			}
			svc := NewService(backend, sessions)

			err := svc.Register(context.Background(), api.RegisterRequest{
				Username: "jane",
				Email:    "jane@mail.com",
				Password: "Abcdefg1!",
			})

			if tt.backendErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.backendErr)
			} else {
				require.NoError(t, err)
			}
			// Registration never logs the user in.
			assert.Equal(t, session.Session{}, sessions.Read())
		})
	}
}

func TestService_Logout_Success(t *testing.T) {
	sessions := session.NewStore()
	sessions.SetAuthenticated(sessions.Begin(), "jane")

	backend := &BackendMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
	}
	svc := NewService(backend, sessions)

	err := svc.Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, session.Session{}, sessions.Read())
}

// When the logout call fails, the store is reconciled by a probe instead of
// guessing: the probe outcome decides, then the logout error propagates.
func TestService_Logout_Failure_ReconciledByProbe(t *testing.T) {
	tests := []struct {
		name         string
		meErr        error
		wantLoggedIn bool
	}{
		{name: "server still has a session", wantLoggedIn: true},
		{name: "server session is gone", meErr: errors.New("server error (401)"), wantLoggedIn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore()
			sessions.SetAuthenticated(sessions.Begin(), "jane")

			logoutErr := errors.New("server error (500)")
			backend := &BackendMock{
				LogoutFunc: func(ctx context.Context) error { return logoutErr },
				MeFunc: func(ctx context.Context) (*api.UserResponse, error) {
					if tt.meErr != nil {
						return nil, tt.meErr
					}
					return &api.UserResponse{Username: "jane"}, nil
				},
			}
			svc := NewService(backend, sessions)

			err := svc.Logout(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, logoutErr)
			assert.Len(t, backend.MeCalls(), 1)
			assert.Equal(t, tt.wantLoggedIn, sessions.Read().LoggedIn)
		})
	}
}

func TestService_Probe_Success(t *testing.T) {
	sessions := session.NewStore()
	backend := &BackendMock{
		MeFunc: func(ctx context.Context) (*api.UserResponse, error) {
			return &api.UserResponse{Username: "jane"}, nil
		},
	}
	svc := NewService(backend, sessions)

	loggedIn := svc.Probe(context.Background())

	assert.True(t, loggedIn)
	snap := sessions.Read()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "jane", snap.Username)
}

// A negative probe is a normal outcome: no error escapes, the session is
// cleared silently.
func TestService_Probe_NegativeIsSwallowed(t *testing.T) {
	sessions := session.NewStore()
	sessions.SetAuthenticated(sessions.Begin(), "stale")

	backend := &BackendMock{
		MeFunc: func(ctx context.Context) (*api.UserResponse, error) {
			return nil, errors.New("server error (401): not authenticated")
		},
	}
	svc := NewService(backend, sessions)

	loggedIn := svc.Probe(context.Background())

	assert.False(t, loggedIn)
	assert.Equal(t, session.Session{}, sessions.Read())
}
