package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/errors"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

func (c *CLI) batchCommand() *cobra.Command {
	var (
		parallel int
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run many counts from a JSON job file",
		Long: `Run every job in FILE concurrently. FILE holds a JSON array of jobs; use "-"
to read from stdin:

  [
    {"partition": [2, 3, 1], "group": "Cn"},
    {"partition": [2, 3, 1], "group": "Dn", "output": "reps"}
  ]`,
		Example: fmt.Sprintf(`  %[1]s batch jobs.json
  echo '[{"partition":[3,3]}]' | %[1]s batch - --json`, appName),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := readJobs(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			for i := range jobs {
				if jobs[i].MaxConfigs == 0 {
					jobs[i].MaxConfigs = c.Config.Limits.MaxConfigs
				}
				jobs[i].Logger = logger
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(logger)
			results, err := runner.Batch(ctx, jobs, parallel)
			if err != nil {
				return err
			}
			prog.done("counted jobs", "jobs", len(results), "parallel", parallel)

			if jsonOut {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			fmt.Fprintln(c.out, batchTable(results))
			return nil
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", pipeline.DefaultBatchLimit, "number of jobs to run at once")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	return cmd
}

// readJobs decodes a job file, or stdin when path is "-".
func readJobs(path string, stdin io.Reader) ([]pipeline.Options, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open jobs: %w", err)
		}
		defer f.Close()
		r = f
	}

	var jobs []pipeline.Options
	if err := json.NewDecoder(r).Decode(&jobs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode jobs")
	}
	if len(jobs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "job file has no jobs")
	}
	return jobs, nil
}

// batchTable summarizes batch results with one row per job.
func batchTable(results []*pipeline.Result) string {
	rows := make([][]string, len(results))
	for i, res := range results {
		cached := ""
		if res.CacheHit {
			cached = iconSuccess
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			res.Partition.String(),
			string(res.Group),
			strconv.Itoa(res.Count),
			strconv.FormatInt(res.Stats.Configs, 10),
			cached,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Partition", "Group", "Count", "Configs", "Cached").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 3 {
				return styleTableCell.Foreground(colorCyan)
			}
			return styleTableCell
		}).
		Render()
}
