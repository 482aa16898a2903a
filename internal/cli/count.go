package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// countOpts holds the flags shared by the counting commands.
type countOpts struct {
	output     string // num, reps or cosets
	group      string // Cn or Dn (configs only)
	jsonOut    bool   // print the result as JSON
	letters    bool   // spell arrangements as words
	maxConfigs int64  // enumeration limit, 0 uses the configured value
	refresh    bool   // ignore cached results
}

// countJSON is the JSON form of a counting result.
type countJSON struct {
	*pipeline.Result
	Words []string `json:"words,omitempty"`
}

func (c *CLI) necklacesCommand() *cobra.Command {
	return c.newCountCommand(necklace.Cyclic, "necklaces", "Count necklaces (arrangements up to rotation)")
}

func (c *CLI) braceletsCommand() *cobra.Command {
	return c.newCountCommand(necklace.Dihedral, "bracelets", "Count bracelets (arrangements up to rotation and reflection)")
}

// newCountCommand builds a counting command fixed to group g.
func (c *CLI) newCountCommand(g necklace.Group, use, short string) *cobra.Command {
	opts := countOpts{output: string(pipeline.DefaultOutput)}

	cmd := &cobra.Command{
		Use:   use + " PARTITION|WORD",
		Short: short,
		Long: short + `.

PARTITION lists bead multiplicities per color, e.g. "2,3,1" for two beads of
the first color, three of the second and one of the third. A WORD such as
"aabbbc" describes the same beads and spells results with its letters.`,
		Example: fmt.Sprintf(`  %[1]s %[2]s 2,3,1
  %[1]s %[2]s 2,3,1 -O reps
  %[1]s %[2]s aabbbc -O cosets --json`, appName, use),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(cmd, args[0], g, opts)
		},
	}

	addCountFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "O", opts.output, "output mode: num, reps, cosets")
	return cmd
}

func (c *CLI) configsCommand() *cobra.Command {
	var cosets bool
	opts := countOpts{group: string(pipeline.DefaultGroup)}

	cmd := &cobra.Command{
		Use:   "configs PARTITION|WORD",
		Short: "Quotient the configuration set by a group",
		Long: `Enumerate every arrangement of the beads and split them into orbits under
the cyclic group Cn or the dihedral group Dn.`,
		Example: fmt.Sprintf(`  %[1]s configs 2,2 --group Dn
  %[1]s configs abcc --cosets`, appName),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := necklace.ParseGroup(opts.group)
			if err != nil {
				return err
			}
			opts.output = string(necklace.OutputNum)
			if cosets {
				opts.output = string(necklace.OutputCosets)
			}
			return c.runCount(cmd, args[0], g, opts)
		},
	}

	addCountFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.group, "group", "g", opts.group, "group: Cn (rotations) or Dn (rotations and reflections)")
	cmd.Flags().BoolVar(&cosets, "cosets", false, "list every orbit")
	return cmd
}

func addCountFlags(cmd *cobra.Command, opts *countOpts) {
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&opts.letters, "letters", "l", false, "spell arrangements as words")
	cmd.Flags().Int64Var(&opts.maxConfigs, "max-configs", 0, "maximum arrangements to enumerate (default from config, -1 for no limit)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached results")
}

// runCount runs one count and prints it.
func (c *CLI) runCount(cmd *cobra.Command, arg string, g necklace.Group, opts countOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	p, alphabet, err := parsePartitionArg(arg)
	if err != nil {
		return err
	}
	out, err := necklace.ParseOutput(opts.output)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	maxConfigs := opts.maxConfigs
	if maxConfigs == 0 {
		maxConfigs = c.Config.Limits.MaxConfigs
	}

	var spinner *Spinner
	if !opts.jsonOut {
		spinner = newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Counting %ss of %s...", g.Name(), p))
		spinner.Start()
	}
	res, err := runner.Run(ctx, pipeline.Options{
		Partition:  p,
		Group:      g,
		Output:     out,
		MaxConfigs: maxConfigs,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	letters := opts.letters || alphabet != nil || c.Config.Output.Letters
	if opts.jsonOut {
		return c.printCountJSON(res, alphabet, letters)
	}
	c.printCount(res, alphabet, letters)
	return nil
}

func (c *CLI) printCountJSON(res *pipeline.Result, alphabet []rune, letters bool) error {
	body := countJSON{Result: res}
	if letters {
		for _, rep := range res.Reps {
			body.Words = append(body.Words, rep.Word(alphabet))
		}
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

func (c *CLI) printCount(res *pipeline.Result, alphabet []rune, letters bool) {
	printKeyValue(c.out, "Partition", res.Partition.String())
	printKeyValue(c.out, "Group", string(res.Group))
	printKeyValue(c.out, "Count", StyleNumber.Render(strconv.Itoa(res.Count)))

	switch res.Output {
	case necklace.OutputReps:
		fmt.Fprintln(c.out)
		printReps(c.out, res.Reps, alphabet, letters)
	case necklace.OutputCosets:
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, cosetTable(res.Cosets, alphabet, letters))
	}

	fmt.Fprintln(c.out)
	printStats(c.out, res.Stats.Configs, res.Stats.Orbits, res.CacheHit)
}
