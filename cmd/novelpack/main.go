// Package main is the entry point for the novelpack packaging tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/novelreader/novelpack/cmd/novelpack/commands"
	"github.com/novelreader/novelpack/internal/app"
	_ "github.com/novelreader/novelpack/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Context with signal handling: an interrupt kills the in-flight
	// external command through the command context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
