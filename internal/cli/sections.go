package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roffman/pkg/roff"
)

// standardSections are the numbered sections of the Unix manual.
var standardSections = []roff.SectionNumber{
	roff.GeneralCommands,
	roff.SystemCalls,
	roff.LibraryCalls,
	roff.SpecialFiles,
	roff.FileFormats,
	roff.Games,
	roff.Miscellaneous,
	roff.AdminCommands,
	roff.KernelInterfaces,
}

func (c *CLI) sectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List manual section numbers and their categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), sectionsTable())
			return err
		},
	}
}

func sectionsTable() string {
	rows := make([][]string, 0, len(standardSections))
	for _, n := range standardSections {
		rows = append(rows, []string{n.Numeral(), n.Category()})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Section", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Bold(true).Foreground(colorCyan)
			case col == 0:
				return base.Foreground(colorGreen).Align(lipgloss.Right)
			}
			return base
		}).
		Render()
}
