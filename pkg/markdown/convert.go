package markdown

import (
	"fmt"
	"path/filepath"
	"strings"

	bf "github.com/russross/blackfriday/v2"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/roff"
)

// extensions enabled for parsing. Tables and fenced code are the ones
// commonly found in man-page sources.
const extensions = bf.NoIntraEmphasis | bf.Tables | bf.FencedCode |
	bf.Autolink | bf.Strikethrough | bf.SpaceHeadings | bf.BackslashLineBreak

// listIndent is the indentation used for list items.
const listIndent = 2

// Options supplies the page header, which Markdown cannot express.
type Options struct {
	Title          string
	Number         roff.SectionNumber // defaults to roff.GeneralCommands
	Date           string
	Source         string
	Manual         string
	DefaultHeading string // defaults to "DESCRIPTION"
}

// OptionsFromFilename derives the title and section from a file name in
// the go-md2man style: "tool.8.md" is page "tool" in section 8. Without a
// numeric suffix the section is left unset.
func OptionsFromFilename(path string) Options {
	name := filepath.Base(path)
	switch ext := filepath.Ext(name); strings.ToLower(ext) {
	case ".md", ".markdown":
		name = strings.TrimSuffix(name, ext)
	}
	var opts Options
	if ext := filepath.Ext(name); ext != "" {
		if n, err := roff.ParseSectionNumber(ext[1:]); err == nil {
			opts.Number = n
			name = strings.TrimSuffix(name, ext)
		}
	}
	opts.Title = name
	return opts
}

// Convert parses src and builds a document from it.
func Convert(src []byte, opts Options) (roff.Document, error) {
	if strings.TrimSpace(opts.Title) == "" {
		return roff.Document{}, errors.Invalid("title", "page title is required for markdown input")
	}
	if opts.Number == 0 {
		opts.Number = roff.GeneralCommands
	}
	if opts.DefaultHeading == "" {
		opts.DefaultHeading = "DESCRIPTION"
	}

	c := &converter{
		opts: opts,
		doc: roff.Document{
			Title:  opts.Title,
			Number: opts.Number,
			Date:   opts.Date,
			Source: opts.Source,
			Manual: opts.Manual,
		},
	}

	root := bf.New(bf.WithExtensions(extensions)).Parse(src)
	for n := root.FirstChild; n != nil; n = n.Next {
		if n.Type == bf.Heading && n.Level == 1 {
			c.startSection(strings.ToUpper(plainText(c.inlines(n, roff.StyleRoman))))
			continue
		}
		c.add(c.blocks(n)...)
	}
	return c.doc, nil
}

type converter struct {
	opts Options
	doc  roff.Document
}

func (c *converter) startSection(heading string) {
	c.doc.Sections = append(c.doc.Sections, roff.Section{Heading: heading})
}

func (c *converter) add(nodes ...roff.Node) {
	if len(nodes) == 0 {
		return
	}
	if len(c.doc.Sections) == 0 {
		c.startSection(c.opts.DefaultHeading)
	}
	last := &c.doc.Sections[len(c.doc.Sections)-1]
	last.Nodes = append(last.Nodes, nodes...)
}

// blocks converts one block-level markdown node.
func (c *converter) blocks(n *bf.Node) []roff.Node {
	switch n.Type {
	case bf.Heading:
		return []roff.Node{roff.Paragraph{Runs: []roff.Run{roff.Bold(plainText(c.inlines(n, roff.StyleRoman)))}}}
	case bf.Paragraph:
		if link := soleLink(n); link != nil {
			return []roff.Node{roff.URL{
				Label:  plainText(c.inlines(link, roff.StyleRoman)),
				Target: string(link.LinkData.Destination),
			}}
		}
		return []roff.Node{roff.Paragraph{Runs: c.inlines(n, roff.StyleRoman)}}
	case bf.CodeBlock:
		return []roff.Node{roff.Example{Lines: splitLines(string(n.Literal))}}
	case bf.List:
		return c.list(n)
	case bf.BlockQuote:
		return []roff.Node{roff.Nested{Nodes: c.children(n)}}
	case bf.HorizontalRule:
		return []roff.Node{roff.Break{}}
	case bf.HTMLBlock:
		return []roff.Node{roff.Comment{Text: strings.TrimSpace(string(n.Literal))}}
	case bf.Table:
		return []roff.Node{roff.Example{Lines: c.tableRows(n)}}
	}
	return nil
}

// soleLink returns the link when it is the only content of n. Blackfriday
// surrounds inline links with empty text nodes, which are skipped.
func soleLink(n *bf.Node) *bf.Node {
	var link *bf.Node
	for child := n.FirstChild; child != nil; child = child.Next {
		switch {
		case child.Type == bf.Text && len(child.Literal) == 0:
		case child.Type == bf.Link && link == nil:
			link = child
		default:
			return nil
		}
	}
	return link
}

func (c *converter) children(n *bf.Node) []roff.Node {
	var nodes []roff.Node
	for ch := n.FirstChild; ch != nil; ch = ch.Next {
		nodes = append(nodes, c.blocks(ch)...)
	}
	return nodes
}

// list renders each item as an indented paragraph. Blocks after an item's
// first paragraph are nested under it.
func (c *converter) list(n *bf.Node) []roff.Node {
	ordered := n.ListFlags&bf.ListTypeOrdered != 0
	var nodes []roff.Node
	i := 1
	for item := n.FirstChild; item != nil; item = item.Next {
		title := "-"
		if ordered {
			title = fmt.Sprintf("%d.", i)
		}
		i++

		ip := roff.IndentedParagraph{Title: title, Indent: listIndent}
		rest := item.FirstChild
		if rest != nil && rest.Type == bf.Paragraph {
			ip.Runs = c.inlines(rest, roff.StyleRoman)
			rest = rest.Next
		}
		nodes = append(nodes, ip)

		var nested []roff.Node
		for ; rest != nil; rest = rest.Next {
			nested = append(nested, c.blocks(rest)...)
		}
		if len(nested) > 0 {
			nodes = append(nodes, roff.Nested{Nodes: nested})
		}
	}
	return nodes
}

func (c *converter) tableRows(table *bf.Node) []string {
	var lines []string
	table.Walk(func(n *bf.Node, entering bool) bf.WalkStatus {
		if n.Type != bf.TableRow || !entering {
			return bf.GoToNext
		}
		var cells []string
		for cell := n.FirstChild; cell != nil; cell = cell.Next {
			cells = append(cells, plainText(c.inlines(cell, roff.StyleRoman)))
		}
		lines = append(lines, strings.Join(cells, " | "))
		return bf.SkipChildren
	})
	return lines
}

// inlines flattens the inline children of n into runs, merging adjacent
// runs of the same style.
func (c *converter) inlines(n *bf.Node, style roff.Style) []roff.Run {
	var runs []roff.Run
	for ch := n.FirstChild; ch != nil; ch = ch.Next {
		switch ch.Type {
		case bf.Text:
			runs = appendRun(runs, strings.ReplaceAll(string(ch.Literal), "\n", " "), style)
		case bf.Code:
			runs = appendRun(runs, string(ch.Literal), roff.StyleBold)
		case bf.Emph:
			runs = appendRuns(runs, c.inlines(ch, roff.StyleItalic))
		case bf.Strong:
			runs = appendRuns(runs, c.inlines(ch, roff.StyleBold))
		case bf.Del, bf.Image:
			runs = appendRuns(runs, c.inlines(ch, style))
		case bf.Link:
			label := c.inlines(ch, style)
			runs = appendRuns(runs, label)
			if dest := string(ch.LinkData.Destination); dest != "" && dest != plainText(label) {
				runs = appendRun(runs, " <"+dest+">", roff.StyleRoman)
			}
		case bf.Softbreak, bf.Hardbreak:
			runs = appendRun(runs, " ", style)
		}
	}
	return runs
}

func appendRun(runs []roff.Run, text string, style roff.Style) []roff.Run {
	if text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Style() == style {
		runs[n-1] = roff.NewRun(runs[n-1].Content() + text).WithStyle(style)
		return runs
	}
	return append(runs, roff.NewRun(text).WithStyle(style))
}

func appendRuns(runs, more []roff.Run) []roff.Run {
	for _, r := range more {
		runs = appendRun(runs, r.Content(), r.Style())
	}
	return runs
}

func plainText(runs []roff.Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Content())
	}
	return strings.TrimSpace(b.String())
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
