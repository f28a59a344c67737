package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mddlabs/mddctl/internal/client/iocli"
	"github.com/mddlabs/mddctl/internal/client/session"
)

func quietIO() *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {},
		PrintfFunc:  func(format string, a ...any) {},
	}
}

func TestGuard_FollowsSessionOnly(t *testing.T) {
	sessions := session.NewStore()
	guard := NewGuard(sessions)

	assert.False(t, guard.CanEnter())

	sessions.SetAuthenticated(sessions.Begin(), "jane")
	assert.True(t, guard.CanEnter())

	sessions.SetUnauthenticated(sessions.Begin())
	assert.False(t, guard.CanEnter())
}

func TestRouter_UnprotectedRouteAlwaysActivates(t *testing.T) {
	sessions := session.NewStore()
	r := New(NewGuard(sessions), nil, quietIO())

	activated := false
	r.Handle(Route{Name: RouteHome, Handler: func(ctx context.Context, args []string) error {
		activated = true
		return nil
	}})

	require.NoError(t, r.Navigate(context.Background(), RouteHome, nil))
	assert.True(t, activated)
}

// Denied navigation runs the login route first and then resumes the target
// the user asked for, with the original arguments.
func TestRouter_DeniedNavigationLogsInThenResumesTarget(t *testing.T) {
	sessions := session.NewStore()
	r := New(NewGuard(sessions), nil, quietIO())

	var activated []string
	var gotArgs []string
	r.Handle(Route{Name: RouteLogin, Handler: func(ctx context.Context, args []string) error {
		activated = append(activated, RouteLogin)
		sessions.SetAuthenticated(sessions.Begin(), "jane")
		return nil
	}})
	r.Handle(Route{Name: RouteArticles, Protected: true, Handler: func(ctx context.Context, args []string) error {
		activated = append(activated, RouteArticles)
		gotArgs = args
		return nil
	}})

	require.NoError(t, r.Navigate(context.Background(), RouteArticles, []string{"asc"}))
	assert.Equal(t, []string{RouteLogin, RouteArticles}, activated)
	assert.Equal(t, []string{"asc"}, gotArgs)
}

// A failed login aborts the navigation; the target never activates.
func TestRouter_DeniedNavigationFailedLoginAborts(t *testing.T) {
	sessions := session.NewStore()
	r := New(NewGuard(sessions), nil, quietIO())

	loginErr := errors.New("login failed: server error (401)")
	activated := false
	r.Handle(Route{Name: RouteLogin, Handler: func(ctx context.Context, args []string) error {
		return loginErr
	}})
	r.Handle(Route{Name: RouteArticles, Protected: true, Handler: func(ctx context.Context, args []string) error {
		activated = true
		return nil
	}})

	err := r.Navigate(context.Background(), RouteArticles, nil)

	require.ErrorIs(t, err, loginErr)
	assert.False(t, activated)
}

func TestRouter_ProtectedRouteActivatesWhenLoggedIn(t *testing.T) {
	sessions := session.NewStore()
	sessions.SetAuthenticated(sessions.Begin(), "jane")
	r := New(NewGuard(sessions), nil, quietIO())

	activated := false
	r.Handle(Route{Name: RouteProfile, Protected: true, Handler: func(ctx context.Context, args []string) error {
		activated = true
		return nil
	}})

	require.NoError(t, r.Navigate(context.Background(), RouteProfile, []string{"update"}))
	assert.True(t, activated)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := New(NewGuard(session.NewStore()), nil, quietIO())

	err := r.Navigate(context.Background(), "bogus", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

type waiterFunc func(ctx context.Context) error

func (f waiterFunc) Wait(ctx context.Context) error { return f(ctx) }

// The guard must not be consulted before the startup probe settled: here the
// probe result arrives during Wait and flips the session to logged-in.
func TestRouter_WaitsForBootstrapBeforeGuard(t *testing.T) {
	sessions := session.NewStore()
	waiter := waiterFunc(func(ctx context.Context) error {
		sessions.SetAuthenticated(sessions.Begin(), "jane")
		return nil
	})
	r := New(NewGuard(sessions), waiter, quietIO())

	activated := false
	r.Handle(Route{Name: RouteLogin, Handler: func(ctx context.Context, args []string) error { return nil }})
	r.Handle(Route{Name: RouteArticles, Protected: true, Handler: func(ctx context.Context, args []string) error {
		activated = true
		return nil
	}})

	require.NoError(t, r.Navigate(context.Background(), RouteArticles, nil))
	assert.True(t, activated)
}

// Logout followed by navigation to articles must land on login (the session
// is gone and the guard denies entry).
func TestRouter_LogoutThenArticlesDenied(t *testing.T) {
	sessions := session.NewStore()
	sessions.SetAuthenticated(sessions.Begin(), "jane")
	r := New(NewGuard(sessions), nil, quietIO())

	var activated []string
	r.Handle(Route{Name: RouteLogin, Handler: func(ctx context.Context, args []string) error {
		activated = append(activated, RouteLogin)
		return nil
	}})
	r.Handle(Route{Name: RouteArticles, Protected: true, Handler: func(ctx context.Context, args []string) error {
		activated = append(activated, RouteArticles)
		return nil
	}})

	sessions.SetUnauthenticated(sessions.Begin())

	require.NoError(t, r.Navigate(context.Background(), RouteArticles, nil))
	assert.Equal(t, []string{RouteLogin}, activated)
}
