package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roffman/pkg/errors"
	rio "github.com/matzehuels/roffman/pkg/io"
)

// Conversion targets.
const (
	convertTOML = "toml"
	convertRoff = "roff"
)

type convertOpts struct {
	to     string
	output string
}

func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{to: convertTOML}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a page source to a TOML manifest or roff",
		Long: `Convert a TOML, JSON or Markdown page source.

--to toml writes the page as a TOML manifest, which is handy for turning a
Markdown page into an editable description. --to roff renders the page
without touching the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", opts.to, "target format: toml, roff")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func (c *CLI) runConvert(ctx context.Context, stdout io.Writer, path string, opts convertOpts) error {
	logger := loggerFromContext(ctx)

	if opts.to != convertTOML && opts.to != convertRoff {
		e := errors.New(errors.ErrCodeInvalidFormat, "unsupported target %q (expected toml or roff)", opts.to)
		e.Field = "to"
		return e
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}

	doc, err := rio.Import(path)
	if err != nil {
		return err
	}
	logger.Debug("imported page", "path", path, "title", doc.Title, "sections", len(doc.Sections))

	if opts.output == "" {
		if opts.to == convertRoff {
			return rio.WriteRoff(doc, stdout)
		}
		return rio.WriteTOML(doc, stdout)
	}

	if opts.to == convertRoff {
		err = rio.ExportRoff(doc, opts.output)
	} else {
		err = rio.ExportTOML(doc, opts.output)
	}
	if err != nil {
		return err
	}
	printSuccess("Converted %s to %s", StyleHighlight.Render(path), opts.to)
	printFile(opts.output)
	return nil
}
