// Package io reads manual pages from manifest files and writes rendered
// roff source.
//
// # Overview
//
// A manifest describes a [roff.Document] as data. The same schema is
// accepted as TOML and JSON:
//
//	title = "roffman"
//	section = 1
//	date = "August 2021"
//
//	[[sections]]
//	heading = "NAME"
//
//	  [[sections.nodes]]
//	  type = "text"
//	  text = "roffman - render manual pages"
//
//	[[sections]]
//	heading = "SYNOPSIS"
//
//	  [[sections.nodes]]
//	  type = "synopsis"
//	  name = "roffman"
//	  options = [{ flag = "-o", argument = "file" }]
//
// # Document Fields
//
//   - title: page title (required)
//   - section: manual section numeral, 1-255 (required)
//   - date, source, manual: optional header arguments
//   - sections: ordered list of {heading, subtitle, nodes}
//
// # Node Types
//
// Every node has a "type". Inline text is given either as "text" with an
// optional "style" (roman, bold, italic) or as a "runs" list of
// {text, style} objects.
//
//   - text: one inline run
//   - paragraph: runs
//   - indented: runs, title, indent
//   - tagged: tag (a run), runs
//   - example: lines (written verbatim)
//   - synopsis: name, runs (description), options [{flag, argument, runs}]
//   - url: label, target
//   - email: label, address
//   - glyph: glyph (trademark, registered, left-quote, right-quote,
//     em-dash, en-dash, nbsp)
//   - nested: nodes
//   - break
//   - comment: comment
//
// Unknown keys, node types, styles and glyphs are rejected with an
// INVALID_MANIFEST error whose Field names the offending entry.
//
// # Markdown
//
// [Import] also accepts Markdown files (.md, .markdown), converted with
// package markdown. Following the go-md2man convention, a file named
// "tool.8.md" yields a page titled "tool" in section 8.
//
// # Export
//
// [WriteRoff] and [ExportRoff] render a document and write the roff
// source. [WriteTOML] and [ExportTOML] write a document back as a manifest,
// which is how Markdown pages are converted for hand editing.
package io
