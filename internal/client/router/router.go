package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mddlabs/mddctl/internal/client/iocli"
)

// Route names mirror the navigation surface of the application.
const (
	RouteHome          = "home"
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteLogout        = "logout"
	RouteStatus        = "status"
	RouteArticles      = "articles"
	RouteArticle       = "article"
	RouteCreateArticle = "create-article"
	RouteTopics        = "topics"
	RouteSubscribe     = "subscribe"
	RouteUnsubscribe   = "unsubscribe"
	RouteComment       = "comment"
	RouteProfile       = "profile"
	RouteDrafts        = "drafts"
	RoutePublishDraft  = "publish-draft"
)

// ErrRouteNotFound is returned for commands outside the route table.
var ErrRouteNotFound = errors.New("unknown command")

// Handler executes a route.
type Handler func(ctx context.Context, args []string) error

// Route binds a name to a handler. Protected routes require a live session.
type Route struct {
	Handler   Handler
	Name      string
	Protected bool
}

// Waiter blocks until the startup session probe has settled. Navigation to a
// protected route waits on it so the guard never reads a store the probe has
// not reconciled yet.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Router dispatches commands through the route table, consulting the guard
// before activating a protected route. A denied navigation redirects to the
// login route and resumes the requested route once the login succeeds.
type Router struct {
	routes map[string]Route
	guard  *Guard
	boot   Waiter
	io     iocli.IO
}

func New(guard *Guard, boot Waiter, io iocli.IO) *Router {
	return &Router{
		routes: make(map[string]Route),
		guard:  guard,
		boot:   boot,
		io:     io,
	}
}

// Handle registers a route. Later registrations overwrite earlier ones.
func (r *Router) Handle(route Route) {
	r.routes[route.Name] = route
}

// Navigate activates the named route. When the guard denies a protected
// route, the login route runs first and the target is activated afterwards.
func (r *Router) Navigate(ctx context.Context, name string, args []string) error {
	route, ok := r.routes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	if route.Protected {
		if r.boot != nil {
			if err := r.boot.Wait(ctx); err != nil {
				return fmt.Errorf("waiting for session probe: %w", err)
			}
		}
		if !r.guard.CanEnter() {
			slog.Debug("navigation denied", "route", name)
			r.io.Println("You need to be logged in to do that.")
			login, ok := r.routes[RouteLogin]
			if !ok {
				return fmt.Errorf("%w: %s", ErrRouteNotFound, RouteLogin)
			}
			if err := login.Handler(ctx, nil); err != nil {
				return err
			}
			// Login succeeded; resume the navigation the user asked for.
			if !r.guard.CanEnter() {
				return nil
			}
		}
	}

	return route.Handler(ctx, args)
}
