package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/roffman/pkg/observability"
	"github.com/matzehuels/roffman/pkg/roff"
)

// Render validates doc and returns its roff source.
func Render(ctx context.Context, doc roff.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, doc.Title)
	start := time.Now()

	page, err := doc.Render()

	hooks.OnRenderComplete(ctx, doc.Title, len(page), time.Since(start), err)
	return page, err
}
