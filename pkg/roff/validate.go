package roff

import (
	"fmt"
	"strings"

	"github.com/matzehuels/roffman/pkg/errors"
)

// Validate reports the first structural problem in d, or nil.
// The returned error has code INVALID_DOCUMENT and names the offending field.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.Invalid("title", "document title cannot be empty")
	}
	if d.Number == 0 {
		return errors.Invalid("number", "section number must be positive")
	}
	for i, s := range d.Sections {
		path := fmt.Sprintf("sections[%d]", i)
		if strings.TrimSpace(s.Heading) == "" {
			return errors.Invalid(path+".heading", "section heading cannot be empty")
		}
		if err := validateNodes(path, s.Nodes); err != nil {
			return err
		}
	}
	return nil
}

func validateNodes(parent string, nodes []Node) error {
	for i, n := range nodes {
		path := fmt.Sprintf("%s.nodes[%d]", parent, i)
		if err := validateNode(path, n); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(path string, n Node) error {
	switch n := n.(type) {
	case nil:
		return errors.Invalid(path, "node cannot be nil")
	case Synopsis:
		if n.Name == "" {
			return errors.Invalid(path+".name", "synopsis name cannot be empty")
		}
		for i, opt := range n.Options {
			if opt.Flag == "" {
				return errors.Invalid(fmt.Sprintf("%s.options[%d].flag", path, i), "option flag cannot be empty")
			}
		}
	case TaggedParagraph:
		if n.Tag.Content() == "" {
			return errors.Invalid(path+".tag", "paragraph tag cannot be empty")
		}
	case URL:
		if n.Target == "" {
			return errors.Invalid(path+".target", "URL target cannot be empty")
		}
	case Email:
		if n.Address == "" {
			return errors.Invalid(path+".address", "email address cannot be empty")
		}
	case Glyph:
		if _, ok := glyphs[n.Kind]; !ok {
			return errors.Invalid(path+".kind", "unknown glyph kind %d", n.Kind)
		}
	case Nested:
		return validateNodes(path, n.Nodes)
	case Text, Paragraph, IndentedParagraph, Example, Break, Comment:
	default:
		return errors.Invalid(path, "unsupported node type %T", n)
	}
	return nil
}
