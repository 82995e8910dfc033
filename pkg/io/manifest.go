package io

import (
	"fmt"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/roff"
)

type manifest struct {
	Title    string        `toml:"title" json:"title"`
	Section  int           `toml:"section" json:"section"`
	Date     string        `toml:"date,omitempty" json:"date,omitempty"`
	Source   string        `toml:"source,omitempty" json:"source,omitempty"`
	Manual   string        `toml:"manual,omitempty" json:"manual,omitempty"`
	Sections []sectionSpec `toml:"sections,omitempty" json:"sections,omitempty"`
}

type sectionSpec struct {
	Heading  string     `toml:"heading" json:"heading"`
	Subtitle string     `toml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Nodes    []nodeSpec `toml:"nodes,omitempty" json:"nodes,omitempty"`
}

type nodeSpec struct {
	Type    string       `toml:"type" json:"type"`
	Text    string       `toml:"text,omitempty" json:"text,omitempty"`
	Style   string       `toml:"style,omitempty" json:"style,omitempty"`
	Runs    []runSpec    `toml:"runs,omitempty" json:"runs,omitempty"`
	Title   string       `toml:"title,omitempty" json:"title,omitempty"`
	Indent  int          `toml:"indent,omitempty" json:"indent,omitempty"`
	Tag     *runSpec     `toml:"tag,omitempty" json:"tag,omitempty"`
	Lines   []string     `toml:"lines,omitempty" json:"lines,omitempty"`
	Name    string       `toml:"name,omitempty" json:"name,omitempty"`
	Options []optionSpec `toml:"options,omitempty" json:"options,omitempty"`
	Label   string       `toml:"label,omitempty" json:"label,omitempty"`
	Target  string       `toml:"target,omitempty" json:"target,omitempty"`
	Address string       `toml:"address,omitempty" json:"address,omitempty"`
	Glyph   string       `toml:"glyph,omitempty" json:"glyph,omitempty"`
	Comment string       `toml:"comment,omitempty" json:"comment,omitempty"`
	Nodes   []nodeSpec   `toml:"nodes,omitempty" json:"nodes,omitempty"`
}

type runSpec struct {
	Text  string `toml:"text" json:"text"`
	Style string `toml:"style,omitempty" json:"style,omitempty"`
}

type optionSpec struct {
	Flag     string    `toml:"flag" json:"flag"`
	Argument string    `toml:"argument,omitempty" json:"argument,omitempty"`
	Runs     []runSpec `toml:"runs,omitempty" json:"runs,omitempty"`
}

var glyphFromString = map[string]roff.GlyphKind{
	"trademark":   roff.TrademarkSign,
	"registered":  roff.RegisteredSign,
	"left-quote":  roff.LeftQuote,
	"right-quote": roff.RightQuote,
	"em-dash":     roff.EmDash,
	"en-dash":     roff.EnDash,
	"nbsp":        roff.NonBreakingSpace,
}

var glyphToString = func() map[roff.GlyphKind]string {
	m := make(map[roff.GlyphKind]string, len(glyphFromString))
	for k, v := range glyphFromString {
		m[v] = k
	}
	return m
}()

func invalid(field, format string, args ...any) error {
	e := errors.New(errors.ErrCodeInvalidManifest, format, args...)
	e.Field = field
	return e
}

// document converts a decoded manifest. Structural rules of the page itself
// (empty flags and the like) are left to roff.Document.Validate.
func (m manifest) document() (roff.Document, error) {
	if m.Section < 1 || m.Section > 255 {
		return roff.Document{}, invalid("section", "section must be between 1 and 255, got %d", m.Section)
	}
	doc := roff.Document{
		Title:  m.Title,
		Number: roff.SectionNumber(m.Section),
		Date:   m.Date,
		Source: m.Source,
		Manual: m.Manual,
	}
	for i, s := range m.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		nodes, err := buildNodes(path, s.Nodes)
		if err != nil {
			return roff.Document{}, err
		}
		doc.Sections = append(doc.Sections, roff.Section{
			Heading:  s.Heading,
			Subtitle: s.Subtitle,
			Nodes:    nodes,
		})
	}
	return doc, nil
}

func buildNodes(parent string, specs []nodeSpec) ([]roff.Node, error) {
	nodes := make([]roff.Node, 0, len(specs))
	for i, spec := range specs {
		n, err := spec.node(fmt.Sprintf("%s.nodes[%d]", parent, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (s nodeSpec) node(path string) (roff.Node, error) {
	switch s.Type {
	case "text":
		r, err := runSpec{Text: s.Text, Style: s.Style}.run(path)
		if err != nil {
			return nil, err
		}
		return roff.Text{Run: r}, nil
	case "paragraph":
		runs, err := s.runs(path)
		return roff.Paragraph{Runs: runs}, err
	case "indented":
		runs, err := s.runs(path)
		return roff.IndentedParagraph{Runs: runs, Indent: s.Indent, Title: s.Title}, err
	case "tagged":
		if s.Tag == nil {
			return nil, invalid(path+".tag", "tagged paragraph requires a tag")
		}
		tag, err := s.Tag.run(path + ".tag")
		if err != nil {
			return nil, err
		}
		runs, err := s.runs(path)
		return roff.TaggedParagraph{Tag: tag, Runs: runs}, err
	case "example":
		return roff.Example{Lines: s.Lines}, nil
	case "synopsis":
		return s.synopsis(path)
	case "url":
		return roff.URL{Label: s.Label, Target: s.Target}, nil
	case "email":
		return roff.Email{Label: s.Label, Address: s.Address}, nil
	case "glyph":
		kind, ok := glyphFromString[s.Glyph]
		if !ok {
			return nil, invalid(path+".glyph", "unknown glyph %q", s.Glyph)
		}
		return roff.Glyph{Kind: kind}, nil
	case "nested":
		nodes, err := buildNodes(path, s.Nodes)
		return roff.Nested{Nodes: nodes}, err
	case "break":
		return roff.Break{}, nil
	case "comment":
		return roff.Comment{Text: s.Comment}, nil
	case "":
		return nil, invalid(path+".type", "node type is required")
	}
	return nil, invalid(path+".type", "unknown node type %q", s.Type)
}

// runs returns the inline content of s: the "text" shorthand first, then
// the "runs" list.
func (s nodeSpec) runs(path string) ([]roff.Run, error) {
	specs := s.Runs
	if s.Text != "" {
		specs = append([]runSpec{{Text: s.Text, Style: s.Style}}, specs...)
	}
	return buildRuns(path+".runs", specs)
}

func (s nodeSpec) synopsis(path string) (roff.Node, error) {
	desc, err := s.runs(path)
	if err != nil {
		return nil, err
	}
	syn := roff.Synopsis{Name: s.Name, Description: desc}
	for i, o := range s.Options {
		optPath := fmt.Sprintf("%s.options[%d]", path, i)
		runs, err := buildRuns(optPath+".runs", o.Runs)
		if err != nil {
			return nil, err
		}
		syn.Options = append(syn.Options, roff.SynopsisOption{
			Flag:        o.Flag,
			Argument:    o.Argument,
			Description: runs,
		})
	}
	return syn, nil
}

func buildRuns(path string, specs []runSpec) ([]roff.Run, error) {
	var runs []roff.Run
	for i, spec := range specs {
		r, err := spec.run(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (s runSpec) run(path string) (roff.Run, error) {
	style, ok := roff.ParseStyle(s.Style)
	if !ok {
		return roff.Run{}, invalid(path+".style", "unknown style %q", s.Style)
	}
	return roff.NewRun(s.Text).WithStyle(style), nil
}

// fromDocument is the inverse of manifest.document.
func fromDocument(doc roff.Document) manifest {
	m := manifest{
		Title:   doc.Title,
		Section: int(doc.Number),
		Date:    doc.Date,
		Source:  doc.Source,
		Manual:  doc.Manual,
	}
	for _, s := range doc.Sections {
		m.Sections = append(m.Sections, sectionSpec{
			Heading:  s.Heading,
			Subtitle: s.Subtitle,
			Nodes:    nodeSpecs(s.Nodes),
		})
	}
	return m
}

func nodeSpecs(nodes []roff.Node) []nodeSpec {
	var specs []nodeSpec
	for _, n := range nodes {
		var s nodeSpec
		switch n := n.(type) {
		case roff.Text:
			rs := toRunSpec(n.Run)
			s = nodeSpec{Type: "text", Text: rs.Text, Style: rs.Style}
		case roff.Paragraph:
			s = nodeSpec{Type: "paragraph", Runs: toRunSpecs(n.Runs)}
		case roff.IndentedParagraph:
			s = nodeSpec{Type: "indented", Runs: toRunSpecs(n.Runs), Title: n.Title, Indent: n.Indent}
		case roff.TaggedParagraph:
			tag := toRunSpec(n.Tag)
			s = nodeSpec{Type: "tagged", Tag: &tag, Runs: toRunSpecs(n.Runs)}
		case roff.Example:
			s = nodeSpec{Type: "example", Lines: n.Lines}
		case roff.Synopsis:
			s = nodeSpec{Type: "synopsis", Name: n.Name, Runs: toRunSpecs(n.Description)}
			for _, o := range n.Options {
				s.Options = append(s.Options, optionSpec{Flag: o.Flag, Argument: o.Argument, Runs: toRunSpecs(o.Description)})
			}
		case roff.URL:
			s = nodeSpec{Type: "url", Label: n.Label, Target: n.Target}
		case roff.Email:
			s = nodeSpec{Type: "email", Label: n.Label, Address: n.Address}
		case roff.Glyph:
			s = nodeSpec{Type: "glyph", Glyph: glyphToString[n.Kind]}
		case roff.Nested:
			s = nodeSpec{Type: "nested", Nodes: nodeSpecs(n.Nodes)}
		case roff.Break:
			s = nodeSpec{Type: "break"}
		case roff.Comment:
			s = nodeSpec{Type: "comment", Comment: n.Text}
		default:
			continue
		}
		specs = append(specs, s)
	}
	return specs
}

func toRunSpec(r roff.Run) runSpec {
	rs := runSpec{Text: r.Content()}
	if r.Style() != roff.StyleRoman {
		rs.Style = r.Style().String()
	}
	return rs
}

func toRunSpecs(runs []roff.Run) []runSpec {
	var specs []runSpec
	for _, r := range runs {
		specs = append(specs, toRunSpec(r))
	}
	return specs
}
