package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	timelike "github.com/tartampluch/go-timelike"
	"github.com/tartampluch/go-timelike/internal/cli"
	"github.com/tartampluch/go-timelike/internal/config"
)

// main is the application entry point.
// It delegates execution to runMain so that deferred function calls run
// before the process terminates; os.Exit() does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the command lifecycle, signal handling, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// Root context cancels on SIGINT (Ctrl+C) or SIGTERM, which is how the
	// serve command shuts down gracefully.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCommand(timelike.RealClock{})
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}
