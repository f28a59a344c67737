package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mddlabs/mddctl/internal/client/api"
	"github.com/mddlabs/mddctl/internal/client/auth"
	"github.com/mddlabs/mddctl/internal/client/bootstrap"
	"github.com/mddlabs/mddctl/internal/client/cli"
	"github.com/mddlabs/mddctl/internal/client/iocli"
	"github.com/mddlabs/mddctl/internal/client/router"
	"github.com/mddlabs/mddctl/internal/client/session"
	"github.com/mddlabs/mddctl/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", "mddctl.db", "Path to the local drafts database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	setupLogging(*verbose)

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	command := router.RouteHome
	if len(args) > 0 {
		command = args[0]
	}

	ctx := context.Background()

	store, err := boltdb.New(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close local database", "error", err)
		}
	}()

	// The session cookie is resumed from the local store, so a login in a
	// previous run carries over to this one.
	apiClient, err := api.NewClient(*serverURL, api.WithSessionStorage(store))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create API client: %v\n", err)
		os.Exit(1)
	}

	sessions := session.NewStore()
	authService := auth.NewService(apiClient, sessions)

	// Reconcile the session with the server in the background; guarded
	// navigation waits for the probe to settle.
	boot := bootstrap.New(authService)
	boot.Start(ctx)

	app := cli.New(stdio, apiClient, authService, sessions, store, boot)

	commandArgs := []string{}
	if len(args) > 1 {
		commandArgs = args[1:]
	}

	if err := app.Run(ctx, command, commandArgs); err != nil {
		if errors.Is(err, router.ErrRouteNotFound) {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
			app.PrintUsage()
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultServerURL() string {
	if env := os.Getenv("MDDCTL_SERVER"); env != "" {
		return env
	}
	return "http://localhost:8080"
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func printVersion() {
	fmt.Printf("mddctl - MDD client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
