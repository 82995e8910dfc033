// Package roff builds manual pages in memory and renders them as roff
// source for the man macro package.
//
// # Overview
//
// A page is a [Document]: a title, a [SectionNumber], an optional date and
// an ordered list of [Section] values. Each section holds an ordered list of
// [Node] values. Rendering walks the tree once and produces byte-exact roff:
//
//	doc := roff.New("roffman-manual", roff.Miscellaneous).
//	    WithDate("August 2021").
//	    WithSection(roff.NewSection("BASIC USAGE",
//	        roff.Paragraph{Runs: []roff.Run{roff.Plain("Some "), roff.Bold("bold"), roff.Plain(" text.")}},
//	        roff.Example{Lines: []string{"$ roffman render page.toml"}},
//	    ))
//
//	src, err := doc.Render()
//
// # Nodes
//
// [Node] is a closed set of variants. Inline variants ([Text], [Glyph]) are
// written at the current output position. Block variants ([Paragraph],
// [IndentedParagraph], [TaggedParagraph], [Example], [Synopsis], [URL],
// [Email], [Nested]) start with a macro line. [Break] and [Comment] are
// single control lines.
//
// # Escaping
//
// Every string in the tree except [Example] lines passes through [Escape]
// exactly once: backslashes are doubled, hyphens become \- and periods
// become \. so no text can be read as a request. A text line that would
// start with an apostrophe (the alternate control character) is prefixed
// with the zero-width escape \& by the renderer.
//
// Macro arguments are escaped and then quoted when they are empty, contain
// whitespace or start with a double quote. Quotes inside a quoted argument
// are doubled.
//
// # Spacing
//
// Within a section body or a [Nested] body, a block that directly follows
// another block is preceded by the empty request line ".", which formatters
// ignore but which keeps the source readable. Inline content never gets a
// marker, and a block that follows inline content only starts a new line.
//
// # Errors
//
// [Escape] and [Run.Render] never fail. [Document.Render] validates the tree
// first and returns a single *errors.Error with code INVALID_DOCUMENT whose
// Field names the offending part (for example
// "sections[0].nodes[3].options[1].flag"). Nothing is rendered on failure.
//
// # Concurrency
//
// Documents are values and rendering does not mutate them, so any number of
// goroutines may render the same or different documents concurrently.
package roff
