package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	timelike "github.com/tartampluch/go-timelike"
)

// InstantOptions holds flags for the instant command.
type InstantOptions struct {
	*RootOptions
	Unix bool
}

// NewInstantCommand creates the instant command.
func NewInstantCommand(rootOpts *RootOptions, clock timelike.Clock) *cobra.Command {
	opts := &InstantOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "instant [value]",
		Short: "Normalize a time-like value to a timezone-aware UTC instant",
		Long: `Normalize a time-like value to a timezone-aware instant.

The value may be a timestamp string (UTC is assumed when no offset is
present) or a number of seconds since the Unix epoch. Without a value,
the current time is printed.

Example:
  timelike instant "2017-01-14 12:00Z"
  timelike instant 1484395200
  timelike instant --unix "2017-01-14"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in any
			if len(args) == 0 {
				in = clock.Now()
			} else {
				in = coerceValue(args[0])
			}

			t, err := timelike.ToTime(in)
			if err != nil {
				return err
			}

			if opts.Unix {
				secs := float64(t.UnixNano()) / float64(time.Second)
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(secs, 'f', -1, 64))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339Nano))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Unix, "unix", false, "print seconds since the Unix epoch")

	return cmd
}
