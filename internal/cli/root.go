package cli

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	timelike "github.com/tartampluch/go-timelike"
	"github.com/tartampluch/go-timelike/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the timelike CLI.
// The clock is injected so tests can pin "now".
func NewRootCommand(clock timelike.Clock) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Normalize time-like and duration-like values",
		Long: `timelike normalizes heterogeneous time-like and duration-like values.

Timestamps (text or epoch seconds) are resolved to timezone-aware UTC
instants; durations (seconds, expressions like "1h30m" or "2d", or named
components) are resolved to a canonical duration.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.Verbose)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewInstantCommand(opts, clock))
	cmd.AddCommand(NewDurationCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// setupLogging configures the default slog logger on stderr.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// coerceValue routes a CLI argument into the numeric or textual branch of
// the coercion functions. Anything that parses as a float is epoch seconds
// (resp. a second count); everything else is treated as text.
func coerceValue(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
