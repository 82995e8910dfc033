// Package pkg provides the core libraries for roffman, a generator of Unix
// manual pages in the roff man macro language.
//
// # Overview
//
// A page is described as a tree of typed nodes: a header, sections, and
// block nodes such as paragraphs, tagged paragraphs, examples and
// synopses. The tree is rendered to roff source that man(1) can display.
//
// The pkg directory is organized into these areas:
//
//  1. [roff] - The page model, text escaping and the renderer
//  2. [markdown] - Markdown to page tree conversion
//  3. [io] - TOML, JSON and Markdown page sources, roff and TOML output
//  4. [pipeline] - Orchestration (parse, render, cache)
//  5. [cache] - Page caches (file, Redis, MongoDB)
//  6. [server] - The HTTP render service
//
// # Data Flow
//
//	Page source (TOML / JSON / Markdown)
//	         ↓
//	    [io] package (decode into a roff.Document)
//	         ↓
//	    [roff] package (validate and render)
//	         ↓
//	    roff source, cached by [pipeline]
//
// # Quick Start
//
// Build and render a page directly:
//
//	doc := roff.Document{
//	    Title:  "tool",
//	    Number: roff.GeneralCommands,
//	    Sections: []roff.Section{{
//	        Heading: "NAME",
//	        Nodes: []roff.Node{roff.Paragraph{
//	            Runs: []roff.Run{roff.Plain("tool - do things")},
//	        }},
//	    }},
//	}
//	page, err := doc.Render()
//
// Or let a [pipeline.Runner] parse, render and cache a source:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Source:   src,
//	    Filename: "tool.1.md",
//	})
//
// Supporting packages:
//
//   - [errors]: Structured errors with machine-readable codes
//   - [observability]: Hooks for parse, render, cache and server events
//   - [buildinfo]: Version information set at build time
//
// [roff]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/roff
// [markdown]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/markdown
// [io]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/pipeline#Runner
// [cache]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/roffman/pkg/buildinfo
package pkg
