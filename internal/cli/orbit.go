package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// orbitJSON is the JSON form of the orbit command.
type orbitJSON struct {
	Arrangement necklace.Arrangement `json:"arrangement"`
	Group       necklace.Group       `json:"group"`
	Size        int                  `json:"size"`
	Stabilizer  int                  `json:"stabilizer"`
	Orbit       necklace.Set         `json:"orbit"`
}

func (c *CLI) orbitCommand() *cobra.Command {
	var (
		group   = string(pipeline.DefaultGroup)
		jsonOut bool
		letters bool
	)

	cmd := &cobra.Command{
		Use:   "orbit ARRANGEMENT|WORD",
		Short: "Show the orbit of one arrangement",
		Long: `List every arrangement reachable from ARRANGEMENT by rotation (Cn) or by
rotation and reflection (Dn). ARRANGEMENT is a list of symbol indices such as
"0,1,2,2" or a word such as "abcc".`,
		Example: fmt.Sprintf(`  %[1]s orbit abcc --group Dn
  %[1]s orbit 0,0,1,1 --json`, appName),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, alphabet, err := parseArrangementArg(args[0])
			if err != nil {
				return err
			}
			g, err := necklace.ParseGroup(group)
			if err != nil {
				return err
			}
			orbit, err := necklace.Orbit(x, g)
			if err != nil {
				return err
			}
			stab, err := necklace.Stabilizer(x, g)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("orbit", "arrangement", x.String(), "group", g, "size", orbit.Len())

			if jsonOut {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(orbitJSON{
					Arrangement: x,
					Group:       g,
					Size:        orbit.Len(),
					Stabilizer:  stab,
					Orbit:       orbit,
				})
			}

			words := letters || alphabet != nil || c.Config.Output.Letters
			printKeyValue(c.out, "Arrangement", formatArrangement(x, alphabet, words))
			printKeyValue(c.out, "Group", string(g))
			printKeyValue(c.out, "Orbit size", StyleNumber.Render(strconv.Itoa(orbit.Len())))
			printKeyValue(c.out, "Stabilizer", StyleNumber.Render(strconv.Itoa(stab)))
			fmt.Fprintln(c.out)
			printReps(c.out, orbit.Sorted(), alphabet, words)
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", group, "group: Cn or Dn")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the orbit as JSON")
	cmd.Flags().BoolVarP(&letters, "letters", "l", false, "spell arrangements as words")
	return cmd
}
