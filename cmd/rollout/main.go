// Package main is the entry point for the rollout release tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/cmd/rollout/commands"
	"go.trai.ch/rollout/internal/app"
	_ "go.trai.ch/rollout/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Renderer.Stop() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	stop := func() {}
	if cleanup != nil {
		var once sync.Once
		stop = func() { once.Do(cleanup) }
	}
	defer stop()

	for _, opt := range opts {
		opt(components.App)
	}

	logs, _ := components.Logger.(commands.LogFormat)
	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Progress output ends before the error is reported.
		stop()
		components.Logger.Error(err)
		return 1
	}
	return 0
}
