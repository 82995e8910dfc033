package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/pipeline"
	"github.com/matzehuels/roffman/pkg/roff"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output         string // output file or directory; stdout when empty
	format         string // source format; inferred from the extension when empty
	noCache        bool
	refresh        bool
	manualCategory bool   // fill an empty manual argument from the section
	title          string // markdown header overrides
	section        string
	date           string
	pick           bool // choose the source interactively
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a page source to roff",
		Long: `Render a TOML, JSON or Markdown page source to roff.

The page is written to stdout unless --output is given. When --output names
a directory the file is called <title>.<section> inside it.

Markdown sources named like tool.8.md take their title and section from the
file name; --title, --section and --date override the header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				if !opts.pick {
					return errors.New(errors.ErrCodeInvalidInput, "no source file given (pass a file or use --pick)")
				}
				picked, err := pickSource(".")
				if err != nil {
					return err
				}
				if picked == "" {
					printInfo("No source selected")
					return nil
				}
				path = picked
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "source format: toml, json, markdown (default from extension)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the page cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if the page is cached")
	cmd.Flags().BoolVar(&opts.manualCategory, "manual-category", false, "use the section category as manual name when none is set")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title (markdown)")
	cmd.Flags().StringVar(&opts.section, "section", "", "section number (markdown)")
	cmd.Flags().StringVar(&opts.date, "date", "", "page date (markdown)")
	cmd.Flags().BoolVarP(&opts.pick, "pick", "i", false, "choose a source in the current directory interactively")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	popts, err := pipelineOptions(path, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s(%s)", res.Title, res.Number.Numeral())

	if opts.output == "" {
		_, err := io.WriteString(stdout, res.Page)
		return err
	}

	out := opts.output
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, pageFilename(res.Title, res.Number))
	}
	if err := errors.ValidatePath(out); err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(res.Page), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	prog.done("Rendered " + name)
	printSuccess("Rendered %s", StyleHighlight.Render(name))
	printFile(out)
	printStats(res.Stats.Sections, res.Stats.Bytes, res.CacheHit)
	printNextStep("View with", "man -l "+out)
	return nil
}

// pipelineOptions reads the source and maps the flags onto pipeline options.
func pipelineOptions(path string, opts renderOpts) (pipeline.Options, error) {
	src, err := readSource(path)
	if err != nil {
		return pipeline.Options{}, err
	}
	popts := pipeline.Options{
		Source:         src,
		Format:         opts.format,
		Filename:       path,
		ManualCategory: opts.manualCategory,
		Refresh:        opts.refresh,
	}
	popts.Markdown.Title = opts.title
	popts.Markdown.Date = opts.date
	if opts.section != "" {
		n, err := roff.ParseSectionNumber(opts.section)
		if err != nil {
			e := errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --section")
			e.Field = "section"
			return pipeline.Options{}, e
		}
		popts.Markdown.Number = n
	}
	return popts, nil
}

func readSource(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return src, nil
}

// pageFilename is the conventional file name of a page, e.g. "tool.1".
func pageFilename(title string, n roff.SectionNumber) string {
	return title + "." + n.Numeral()
}
