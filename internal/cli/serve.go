package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/internal/server"
	"github.com/matzehuels/necklace/pkg/metrics"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counters as an HTTP JSON API",
		Example: fmt.Sprintf(`  %[1]s serve --addr :9000
  curl 'localhost:9000/v1/bracelets?partition=2,3,1&output=reps'`, appName),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := server.Options{
				Runner:     runner,
				Logger:     loggerFromContext(ctx),
				MaxConfigs: c.Config.Limits.MaxConfigs,
			}
			if !noMetrics {
				m := metrics.New()
				m.Register()
				opts.Metrics = m.Handler()
			}

			printInfo(cmd.ErrOrStderr(), "Listening on %s", StyleHighlight.Render(addr))
			return server.New(opts).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "do not expose /metrics")
	return cmd
}
