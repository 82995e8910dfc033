package roff

import "slices"

// Section is a titled part of a page.
type Section struct {
	Heading  string
	Subtitle string
	Nodes    []Node
}

// NewSection returns a section with the given heading and body.
func NewSection(heading string, nodes ...Node) Section {
	return Section{Heading: heading, Nodes: nodes}
}

// Document is a complete manual page.
//
// Date, Source and Manual are the optional third to fifth header
// arguments: the last-modified date, the package or project the page
// belongs to, and the manual title (see [SectionNumber.Category]).
type Document struct {
	Title    string
	Number   SectionNumber
	Date     string
	Source   string
	Manual   string
	Sections []Section
}

// New returns an empty document.
func New(title string, number SectionNumber) Document {
	return Document{Title: title, Number: number}
}

// WithDate returns a copy of d with the given date.
func (d Document) WithDate(date string) Document {
	d.Sections = slices.Clone(d.Sections)
	d.Date = date
	return d
}

// WithSection returns a copy of d with s appended. The receiver's section
// slice is never shared with the result.
func (d Document) WithSection(s Section) Document {
	d.Sections = append(slices.Clone(d.Sections), s)
	return d
}

// Render validates d and returns its roff source.
func (d Document) Render() (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	var r renderer
	r.header(d)
	for _, s := range d.Sections {
		r.section(s)
	}
	return r.String(), nil
}
