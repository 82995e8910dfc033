package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roffman/pkg/roff"
)

func (c *CLI) escapeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape text for roff",
		Long: `Escape backslashes, hyphens and periods so the text is printed literally
by roff. The arguments are joined with spaces; without arguments the text is
read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			out := roff.Escape(text)
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}
