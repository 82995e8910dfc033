// Package markdown converts Markdown documents into roff page trees.
//
// Parsing is done by [github.com/russross/blackfriday/v2]; this package
// only maps the resulting syntax tree onto [roff] nodes:
//
//   - level 1 headings start a new section (heading upper-cased)
//   - deeper headings become a paragraph with one bold run
//   - paragraphs become [roff.Paragraph], or a [roff.URL] when the
//     paragraph is a single link
//   - emphasis is italic; strong emphasis and code spans are bold
//   - inline links keep their label followed by " <target>"
//   - code blocks become [roff.Example] with their lines unchanged
//   - list items become [roff.IndentedParagraph] titled "-" or "N."
//   - block quotes become [roff.Nested]
//   - horizontal rules become [roff.Break]
//   - raw HTML blocks are kept as [roff.Comment]
//   - table rows become lines of a [roff.Example], cells joined by " | "
//
// Content before the first level 1 heading goes into a section named by
// Options.DefaultHeading.
package markdown
