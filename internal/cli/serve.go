package cli

import (
	"github.com/spf13/cobra"

	"github.com/tartampluch/go-timelike/internal/config"
	"github.com/tartampluch/go-timelike/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the normalization API over localhost HTTP",
		Long: `Serve the normalization API over HTTP on the loopback interface.

Endpoints:
  GET /v1/instant?value=...   normalize a time-like value
  GET /v1/duration?value=...  normalize a duration-like value

The server runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.NewNormalizeServer(opts.Port)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", config.DefaultPort, "TCP port to listen on")

	return cmd
}
