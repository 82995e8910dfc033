// Package pipeline turns page sources into rendered manual pages.
//
// The pipeline has two stages:
//
//  1. Parse: decode a TOML or JSON manifest, or convert Markdown, into a
//     [roff.Document]
//  2. Render: validate the document and produce roff source
//
// [Runner] wraps both stages with a page cache so the CLI and the HTTP
// service share one code path:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:   src,
//	    Filename: "roffman.1.md",
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.WriteString(result.Page)
//
// The stages are also available on their own as [Parse] and [Render].
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/io"
	"github.com/matzehuels/roffman/pkg/markdown"
	"github.com/matzehuels/roffman/pkg/roff"
)

// DefaultTTL is how long rendered pages stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// MaxSourceSize bounds the size of a single page source.
const MaxSourceSize = 4 << 20

// Options configures one pipeline run.
type Options struct {
	// Source is the raw page description.
	Source []byte

	// Format is one of io.Formats. When empty it is inferred from Filename.
	Format string

	// Filename names the source. Markdown pages take their title and
	// section from it ("tool.8.md").
	Filename string

	// Markdown overrides header fields for Markdown sources. Empty fields
	// fall back to what Filename provides.
	Markdown markdown.Options

	// ManualCategory fills an empty manual argument of the title line with
	// the category of the page's section, e.g. "General Commands Manual".
	ManualCategory bool

	// Refresh skips the cache lookup. The fresh page is still stored.
	Refresh bool

	// TTL for the cached page. Defaults to DefaultTTL.
	TTL time.Duration

	Logger *log.Logger
}

// ValidateAndSetDefaults checks opts and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "source is empty")
	}
	if len(o.Source) > MaxSourceSize {
		return errors.New(errors.ErrCodeInvalidInput, "source exceeds %d bytes", MaxSourceSize)
	}
	if o.Format == "" {
		if o.Filename == "" {
			return errors.New(errors.ErrCodeInvalidFormat, "format is required when no filename is given")
		}
		format, err := io.FormatFromPath(o.Filename)
		if err != nil {
			return err
		}
		o.Format = format
	}
	if err := errors.ValidateFormat(o.Format, io.Formats...); err != nil {
		return err
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return nil
}

// MarkdownOptions merges the filename-derived header with the explicit
// overrides.
func (o Options) MarkdownOptions() markdown.Options {
	opts := markdown.Options{}
	if o.Filename != "" {
		opts = markdown.OptionsFromFilename(o.Filename)
	}
	m := o.Markdown
	if m.Title != "" {
		opts.Title = m.Title
	}
	if m.Number != 0 {
		opts.Number = m.Number
	}
	if m.Date != "" {
		opts.Date = m.Date
	}
	if m.Source != "" {
		opts.Source = m.Source
	}
	if m.Manual != "" {
		opts.Manual = m.Manual
	}
	if m.DefaultHeading != "" {
		opts.DefaultHeading = m.DefaultHeading
	}
	return opts
}

// header summarizes the options that shape a Markdown page header.
func (o Options) header() string {
	if o.Format != io.FormatMarkdown {
		return ""
	}
	m := o.MarkdownOptions()
	return fmt.Sprintf("%s(%d)|%s|%s|%s|%s", m.Title, m.Number, m.Date, m.Source, m.Manual, m.DefaultHeading)
}

// Result is the outcome of [Runner.Execute].
type Result struct {
	Page       string
	Title      string
	Number     roff.SectionNumber
	SourceHash string
	CacheHit   bool

	// Document is the parsed page. It is left empty on a cache hit.
	Document roff.Document

	Stats Stats
}

// Stats records timings and sizes of a run.
type Stats struct {
	ParseTime  time.Duration
	RenderTime time.Duration
	Sections   int
	Bytes      int
}
