package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string // output file path, stdout when empty
	format     string // dot or svg
	group      string // Cn or Dn
	maxConfigs int64  // enumeration limit, 0 uses the configured value
	refresh    bool   // ignore cached drawings
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format: pipeline.FormatDOT,
		group:  string(pipeline.DefaultGroup),
	}

	cmd := &cobra.Command{
		Use:   "render PARTITION|WORD",
		Short: "Draw the orbits of a partition as DOT or SVG",
		Long: `Draw every orbit of the configuration set as a cluster of arrangements.
Solid edges are rotations; for Dn, dashed edges are reflections. SVG output
is laid out with Graphviz.`,
		Example: fmt.Sprintf(`  %[1]s render 2,2 > quotient.dot
  %[1]s render aabc --group Dn -f svg -o quotient.svg`, appName),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			g, err := necklace.ParseGroup(opts.group)
			if err != nil {
				return err
			}
			p, alphabet, err := parsePartitionArg(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			maxConfigs := opts.maxConfigs
			if maxConfigs == 0 {
				maxConfigs = c.Config.Limits.MaxConfigs
			}
			prog := newProgress(loggerFromContext(ctx))
			data, err := runner.Draw(ctx, pipeline.Options{
				Partition:  p,
				Group:      g,
				MaxConfigs: maxConfigs,
				Refresh:    opts.refresh,
				Logger:     loggerFromContext(ctx),
			}, opts.format, alphabet)
			if err != nil {
				return err
			}

			if err := writeFile(c.out, data, opts.output); err != nil {
				return fmt.Errorf("write %s: %w", opts.format, err)
			}
			if opts.output != "" {
				prog.done("rendered quotient", "partition", p.String(), "group", g, "path", opts.output)
				printFile(cmd.ErrOrStderr(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().StringVarP(&opts.group, "group", "g", opts.group, "group: Cn or Dn")
	cmd.Flags().Int64Var(&opts.maxConfigs, "max-configs", 0, "maximum arrangements to enumerate (default from config, -1 for no limit)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "redraw and overwrite cached drawings")
	return cmd
}
