package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/roffman/pkg/errors"
	"github.com/matzehuels/roffman/pkg/roff"
)

func convertNodes(t *testing.T, src string) []roff.Section {
	t.Helper()
	doc, err := Convert([]byte(src), Options{Title: "tool"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	return doc.Sections
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []roff.Section
	}{
		{
			name: "heading and styles",
			src:  "# Name\n\nHello *world* and `code`.\n",
			want: []roff.Section{roff.NewSection("NAME",
				roff.Paragraph{Runs: []roff.Run{
					roff.Plain("Hello "), roff.Italic("world"), roff.Plain(" and "), roff.Bold("code"), roff.Plain("."),
				}},
			)},
		},
		{
			name: "content before heading",
			src:  "intro\n\n# Usage\n\nbody\n",
			want: []roff.Section{
				roff.NewSection("DESCRIPTION", roff.Paragraph{Runs: []roff.Run{roff.Plain("intro")}}),
				roff.NewSection("USAGE", roff.Paragraph{Runs: []roff.Run{roff.Plain("body")}}),
			},
		},
		{
			name: "subheading",
			src:  "# Options\n\n## Global\n",
			want: []roff.Section{roff.NewSection("OPTIONS",
				roff.Paragraph{Runs: []roff.Run{roff.Bold("Global")}},
			)},
		},
		{
			name: "code block",
			src:  "# Examples\n\n```\n$ tool -v\n  indented\n```\n",
			want: []roff.Section{roff.NewSection("EXAMPLES",
				roff.Example{Lines: []string{"$ tool -v", "  indented"}},
			)},
		},
		{
			name: "bullet list",
			src:  "# Notes\n\n- one\n- two\n",
			want: []roff.Section{roff.NewSection("NOTES",
				roff.IndentedParagraph{Title: "-", Indent: 2, Runs: []roff.Run{roff.Plain("one")}},
				roff.IndentedParagraph{Title: "-", Indent: 2, Runs: []roff.Run{roff.Plain("two")}},
			)},
		},
		{
			name: "ordered list",
			src:  "# Steps\n\n1. fetch\n2. build\n",
			want: []roff.Section{roff.NewSection("STEPS",
				roff.IndentedParagraph{Title: "1.", Indent: 2, Runs: []roff.Run{roff.Plain("fetch")}},
				roff.IndentedParagraph{Title: "2.", Indent: 2, Runs: []roff.Run{roff.Plain("build")}},
			)},
		},
		{
			name: "link paragraph",
			src:  "# See Also\n\n[docs](https://example.com)\n",
			want: []roff.Section{roff.NewSection("SEE ALSO",
				roff.URL{Label: "docs", Target: "https://example.com"},
			)},
		},
		{
			name: "link paragraph between blocks",
			src:  "# See Also\n\nIntro.\n\n[docs](https://example.com)\n\nOutro.\n",
			want: []roff.Section{roff.NewSection("SEE ALSO",
				roff.Paragraph{Runs: []roff.Run{roff.Plain("Intro.")}},
				roff.URL{Label: "docs", Target: "https://example.com"},
				roff.Paragraph{Runs: []roff.Run{roff.Plain("Outro.")}},
			)},
		},
		{
			name: "two links",
			src:  "# See Also\n\n[a](https://a.example) and [b](https://b.example)\n",
			want: []roff.Section{roff.NewSection("SEE ALSO",
				roff.Paragraph{Runs: []roff.Run{roff.Plain("a <https://a.example> and b <https://b.example>")}},
			)},
		},
		{
			name: "inline link",
			src:  "# See Also\n\nRead [docs](https://example.com) first.\n",
			want: []roff.Section{roff.NewSection("SEE ALSO",
				roff.Paragraph{Runs: []roff.Run{roff.Plain("Read docs <https://example.com> first.")}},
			)},
		},
		{
			name: "block quote",
			src:  "# Notes\n\n> quoted\n",
			want: []roff.Section{roff.NewSection("NOTES",
				roff.Nested{Nodes: []roff.Node{roff.Paragraph{Runs: []roff.Run{roff.Plain("quoted")}}}},
			)},
		},
		{
			name: "horizontal rule",
			src:  "# Notes\n\nabove\n\n---\n\nbelow\n",
			want: []roff.Section{roff.NewSection("NOTES",
				roff.Paragraph{Runs: []roff.Run{roff.Plain("above")}},
				roff.Break{},
				roff.Paragraph{Runs: []roff.Run{roff.Plain("below")}},
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertNodes(t, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert() sections =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestConvertHeader(t *testing.T) {
	doc, err := Convert([]byte("# Name\n\ntool\n"), Options{Title: "tool", Number: roff.AdminCommands, Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if doc.Title != "tool" || doc.Number != roff.AdminCommands || doc.Date != "2024-01-01" {
		t.Errorf("header = %q %v %q", doc.Title, doc.Number, doc.Date)
	}

	out, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.HasPrefix(out, ".TH tool 8 2024\\-01\\-01\n.SH NAME\n") {
		t.Errorf("Render() = %q", out)
	}
}

func TestConvertDefaultNumber(t *testing.T) {
	doc, err := Convert(nil, Options{Title: "tool"})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if doc.Number != roff.GeneralCommands {
		t.Errorf("Number = %v, want %v", doc.Number, roff.GeneralCommands)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("Sections = %v, want none", doc.Sections)
	}
}

func TestConvertRequiresTitle(t *testing.T) {
	_, err := Convert([]byte("# Name\n"), Options{})
	if !errors.IsInvalid(err) {
		t.Fatalf("Convert() error = %v, want invalid document", err)
	}
	if got := errors.GetField(err); got != "title" {
		t.Errorf("field = %q, want title", got)
	}
}

func TestOptionsFromFilename(t *testing.T) {
	tests := []struct {
		path   string
		title  string
		number roff.SectionNumber
	}{
		{"docs/tool.8.md", "tool", roff.AdminCommands},
		{"tool.1.markdown", "tool", roff.GeneralCommands},
		{"README.md", "README", 0},
		{"git-commit.md", "git-commit", 0},
		{"tool.conf.5.md", "tool.conf", roff.FileFormats},
		{"tool.conf.md", "tool.conf", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := OptionsFromFilename(tt.path)
			if got.Title != tt.title || got.Number != tt.number {
				t.Errorf("OptionsFromFilename(%q) = %q %v, want %q %v", tt.path, got.Title, got.Number, tt.title, tt.number)
			}
		})
	}
}
