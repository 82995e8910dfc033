package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/roffman/pkg/io"
	"github.com/matzehuels/roffman/pkg/observability"
	"github.com/matzehuels/roffman/pkg/roff"
)

// Parse decodes opts.Source into a document. Options must have been
// validated.
func Parse(ctx context.Context, opts Options) (roff.Document, error) {
	if err := ctx.Err(); err != nil {
		return roff.Document{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Format)
	start := time.Now()

	doc, err := io.Read(bytes.NewReader(opts.Source), opts.Format, opts.MarkdownOptions())
	if err == nil && opts.ManualCategory && doc.Manual == "" && doc.Number != 0 {
		doc.Manual = doc.Number.Category()
	}

	hooks.OnParseComplete(ctx, opts.Format, len(doc.Sections), time.Since(start), err)
	if err != nil {
		return roff.Document{}, err
	}
	return doc, nil
}
