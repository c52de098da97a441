package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tabsheet/pkg/server"
)

// serveCommand creates the serve command, which exposes layout and render
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		Long: `Serve the layout and render API over HTTP.

Routes:
  GET  /healthz
  POST /v1/layout                  JSON placements
  POST /v1/render?format=svg|json|pdf|png

Set ` + envRedisURL + ` to share rendered artifacts between instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			if noCache {
				printWarning(c.out, "Artifact cache disabled")
			}
			printInfo(c.out, "Listening on %s", addr)
			srv := server.New(runner, c.Logger, server.WithMaxBody(maxBody))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBody, "request body limit in bytes")

	return cmd
}
