package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	timelike "github.com/tartampluch/go-timelike"
	"github.com/tartampluch/go-timelike/internal/config"
)

// DurationOptions holds flags for the duration command.
type DurationOptions struct {
	*RootOptions
	AsSeconds  bool
	components map[string]*float64
}

// componentFlags lists the named-component flags in a stable order.
var componentFlags = []string{
	config.UnitWeeks,
	config.UnitDays,
	config.UnitHours,
	config.UnitMinutes,
	config.UnitSeconds,
	config.UnitMilliseconds,
}

// NewDurationCommand creates the duration command.
func NewDurationCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DurationOptions{
		RootOptions: rootOpts,
		components:  make(map[string]*float64, len(componentFlags)),
	}

	cmd := &cobra.Command{
		Use:   "duration [value]",
		Short: "Normalize a duration-like value",
		Long: `Normalize a duration-like value to a canonical duration.

The value may be a number of seconds or an expression using Go units plus
days and weeks ("1h30m", "2d", "1w2d"). Without a value, the duration is
built from the component flags; with neither, the result is zero.

Example:
  timelike duration 90.5
  timelike duration 1h30m
  timelike duration --hours 2 --minutes 30`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in any
			if len(args) > 0 {
				in = coerceValue(args[0])
			} else {
				in = changedComponents(cmd, opts)
			}

			d, err := timelike.ToDuration(in)
			if err != nil {
				return err
			}

			if opts.AsSeconds {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}

	for _, name := range componentFlags {
		opts.components[name] = cmd.Flags().Float64(name, 0, "duration component: "+name)
	}
	cmd.Flags().BoolVar(&opts.AsSeconds, "as-seconds", false, "print the result as seconds")

	return cmd
}

// changedComponents collects only the component flags the user actually set,
// so the empty case stays the zero duration.
func changedComponents(cmd *cobra.Command, opts *DurationOptions) map[string]float64 {
	components := make(map[string]float64)
	for _, name := range componentFlags {
		if cmd.Flags().Changed(name) {
			components[name] = *opts.components[name]
		}
	}
	return components
}
