package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/necklace"
	"github.com/matzehuels/necklace/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) browseCommand() *cobra.Command {
	var (
		group      = string(pipeline.DefaultGroup)
		maxConfigs int64
	)

	cmd := &cobra.Command{
		Use:   "browse PARTITION|WORD",
		Short: "Browse the orbits of a partition interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := necklace.ParseGroup(group)
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

			if maxConfigs == 0 {
				maxConfigs = c.Config.Limits.MaxConfigs
			}
			res, err := runner.Run(ctx, pipeline.Options{
				Partition:  p,
				Group:      g,
				Output:     necklace.OutputCosets,
				MaxConfigs: maxConfigs,
				Logger:     loggerFromContext(ctx),
			})
			if err != nil {
				return err
			}

			letters := alphabet != nil || c.Config.Output.Letters
			model := NewOrbitBrowserModel(res.Result, alphabet, letters)
			_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(c.out)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", group, "group: Cn or Dn")
	cmd.Flags().Int64Var(&maxConfigs, "max-configs", 0, "maximum arrangements to enumerate (default from config, -1 for no limit)")
	return cmd
}

// =============================================================================
// OrbitBrowserModel - Interactive orbit listing
// =============================================================================

// OrbitBrowserModel is the bubbletea model for browsing the orbits of a
// counting result. Enter expands the orbit under the cursor.
type OrbitBrowserModel struct {
	Result   necklace.Result
	Alphabet []rune
	Letters  bool
	Cursor   int
	Expanded bool
	Height   int
	Offset   int
}

// NewOrbitBrowserModel creates a browser over the cosets of res.
func NewOrbitBrowserModel(res necklace.Result, alphabet []rune, letters bool) OrbitBrowserModel {
	return OrbitBrowserModel{
		Result:   res,
		Alphabet: alphabet,
		Letters:  letters,
		Height:   15,
	}
}

func (m OrbitBrowserModel) Init() tea.Cmd {
	return nil
}

func (m OrbitBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Result.Cosets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m OrbitBrowserModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s orbits of %s", m.Result.Group, m.Result.Partition)
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand  q quit"))
	b.WriteString("\n\n")

	if len(m.Result.Cosets) == 0 {
		b.WriteString(listDimStyle.Render("  no orbits"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Result.Cosets) {
		end = len(m.Result.Cosets)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		coset := m.Result.Cosets[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rep, _ := coset.Min()
		rows = append(rows, []string{cursor, strconv.Itoa(i + 1), formatArrangement(rep, m.Alphabet, m.Letters), strconv.Itoa(coset.Len())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Representative", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Expanded {
		b.WriteString("\n")
		for _, a := range m.Result.Cosets[m.Cursor].Sorted() {
			b.WriteString("  ")
			b.WriteString(listNormalStyle.Render(formatArrangement(a, m.Alphabet, m.Letters)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listSelectedStyle.Render(fmt.Sprintf("  %d %ss", m.Result.Count, m.Result.Group.Name())))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Result.Cosets))))

	return b.String()
}
