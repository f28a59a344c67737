// Package cli implements the command layer. Every command is a route in the
// navigation table; protected routes go through the guard and land on the
// login flow when no session exists.
package cli

import (
	"context"

	"github.com/mddlabs/mddctl/internal/client/api"
	"github.com/mddlabs/mddctl/internal/client/auth"
	"github.com/mddlabs/mddctl/internal/client/iocli"
	"github.com/mddlabs/mddctl/internal/client/router"
	"github.com/mddlabs/mddctl/internal/client/session"
	"github.com/mddlabs/mddctl/internal/client/storage"
)

type Cli struct {
	io       iocli.IO
	api      *api.Client
	auth     *auth.Service
	sessions *session.Store
	drafts   storage.DraftStorage
	router   *router.Router
}

func New(
	io iocli.IO,
	apiClient *api.Client,
	authService *auth.Service,
	sessions *session.Store,
	drafts storage.DraftStorage,
	boot router.Waiter,
) *Cli {
	c := &Cli{
		io:       io,
		api:      apiClient,
		auth:     authService,
		sessions: sessions,
		drafts:   drafts,
	}
	c.router = router.New(router.NewGuard(sessions), boot, io)
	c.registerRoutes()
	return c
}

func (c *Cli) registerRoutes() {
	for _, route := range []router.Route{
		{Name: router.RouteHome, Handler: c.runHome},
		{Name: router.RouteLogin, Handler: c.runLogin},
		{Name: router.RouteRegister, Handler: c.runRegister},
		{Name: router.RouteLogout, Handler: c.runLogout},
		{Name: router.RouteStatus, Handler: c.runStatus},
		{Name: router.RouteArticles, Protected: true, Handler: c.runArticles},
		{Name: router.RouteArticle, Protected: true, Handler: c.runArticle},
		{Name: router.RouteCreateArticle, Protected: true, Handler: c.runCreateArticle},
		{Name: router.RouteComment, Protected: true, Handler: c.runComment},
		{Name: router.RouteTopics, Protected: true, Handler: c.runTopics},
		{Name: router.RouteSubscribe, Protected: true, Handler: c.runSubscribe},
		{Name: router.RouteUnsubscribe, Protected: true, Handler: c.runUnsubscribe},
		{Name: router.RouteProfile, Protected: true, Handler: c.runProfile},
		{Name: router.RouteDrafts, Handler: c.runDrafts},
		{Name: router.RoutePublishDraft, Protected: true, Handler: c.runPublishDraft},
	} {
		c.router.Handle(route)
	}
}

// Run navigates to the route named by the command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	return c.router.Navigate(ctx, command, args)
}

func (c *Cli) PrintUsage() {
	c.io.Println("mddctl - MDD client")
	c.io.Println("")
	c.io.Println("Usage:")
	c.io.Println("  mddctl [OPTIONS] COMMAND")
	c.io.Println("")
	c.io.Println("Options:")
	c.io.Println("  --version          Show version information")
	c.io.Println("  --server URL       Server URL (default: http://localhost:8080, env MDDCTL_SERVER)")
	c.io.Println("  --db PATH          Path to the local drafts database (default: mddctl.db)")
	c.io.Println("  --verbose          Enable debug logging")
	c.io.Println("")
	c.io.Println("Commands:")
	c.io.Println("  register                     Create a new account")
	c.io.Println("  login                        Log in")
	c.io.Println("  logout                       Log out")
	c.io.Println("  status                       Show session status")
	c.io.Println("  home                         Show the welcome screen")
	c.io.Println("  articles [asc|desc]          List articles by date")
	c.io.Println("  article <id>                 Show an article with its comments")
	c.io.Println("  comment <articleId>          Comment on an article")
	c.io.Println("  create-article [--draft]     Publish an article (or keep it as a local draft)")
	c.io.Println("  topics                       List topics")
	c.io.Println("  subscribe <topicId>          Subscribe to a topic")
	c.io.Println("  unsubscribe <topicId>        Unsubscribe from a topic")
	c.io.Println("  profile [update]             Show or update your profile")
	c.io.Println("  drafts [show|publish|delete <id>]  Manage local drafts")
	c.io.Println("")
	c.io.Println("Examples:")
	c.io.Println("  mddctl register")
	c.io.Println("  mddctl login")
	c.io.Println("  mddctl articles desc")
	c.io.Println("  mddctl article b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	c.io.Println("  mddctl create-article --draft")
	c.io.Println("  mddctl --server https://mdd.example.com login")
}

// printFormErrors renders per-field validation messages.
func (c *Cli) printFormErrors(errs map[string][]string) {
	for field, messages := range errs {
		for _, msg := range messages {
			c.io.Printf("  %s: %s\n", field, msg)
		}
	}
}
