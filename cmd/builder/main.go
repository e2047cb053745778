// Package main is the entry point for the builder tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/mwleeds/gnome-builder/cmd/builder/commands"
	"github.com/mwleeds/gnome-builder/internal/app"
	"github.com/mwleeds/gnome-builder/internal/core/domain"
	_ "github.com/mwleeds/gnome-builder/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	// Apply options
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, domain.ErrBuildFailed):
		case errors.Is(err, domain.ErrCancelled):
			components.Logger.Warn("build cancelled")
		default:
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}
