package roff

import (
	"strconv"
	"strings"
)

// Requests emitted by the renderer.
const (
	reqTitle       = ".TH"
	reqSection     = ".SH"
	reqSubsection  = ".SS"
	reqParagraph   = ".P"
	reqIndented    = ".IP"
	reqTagged      = ".TP"
	reqExample     = ".EX"
	reqExampleEnd  = ".EE"
	reqSynopsis    = ".SY"
	reqOption      = ".OP"
	reqSynopsisEnd = ".YS"
	reqURL         = ".UR"
	reqURLEnd      = ".UE"
	reqMail        = ".MT"
	reqMailEnd     = ".ME"
	reqIndent      = ".RS"
	reqIndentEnd   = ".RE"
	reqBreak       = ".br"
	reqComment     = `.\"`

	// spacer is the empty request separating adjacent blocks.
	spacer = "."
)

// renderer accumulates roff source. midLine is true while the last byte
// written was not a newline.
type renderer struct {
	b       strings.Builder
	midLine bool
}

// String returns the output without leading or trailing blank lines,
// terminated by a single newline.
func (r *renderer) String() string {
	out := strings.Trim(r.b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (r *renderer) endLine() {
	if r.midLine {
		r.b.WriteByte('\n')
		r.midLine = false
	}
}

// request writes a macro line. Arguments must already be escaped and quoted.
func (r *renderer) request(name string, args ...string) {
	r.endLine()
	r.b.WriteString(name)
	for _, a := range args {
		r.b.WriteByte(' ')
		r.b.WriteString(a)
	}
	r.b.WriteByte('\n')
}

// inline writes rendered text at the current position.
func (r *renderer) inline(s string) {
	if s == "" {
		return
	}
	r.b.WriteString(guardLines(s, !r.midLine))
	r.midLine = !strings.HasSuffix(s, "\n")
}

// textLine writes runs as a line of their own. Nothing is written for an
// empty rendering.
func (r *renderer) textLine(runs ...Run) {
	r.endLine()
	r.inline(RenderRuns(runs))
	r.endLine()
}

func (r *renderer) header(d Document) {
	args := []string{arg(d.Title), d.Number.Numeral()}
	optional := []string{d.Date, d.Source, d.Manual}
	last := -1
	for i, v := range optional {
		if v != "" {
			last = i
		}
	}
	for _, v := range optional[:last+1] {
		args = append(args, arg(v))
	}
	r.request(reqTitle, args...)
}

func (r *renderer) section(s Section) {
	r.request(reqSection, arg(s.Heading))
	if s.Subtitle != "" {
		r.request(reqSubsection, arg(s.Subtitle))
	}
	r.body(s.Nodes)
}

// body renders one spacing scope.
func (r *renderer) body(nodes []Node) {
	lastBlock := false
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			r.inline(n.Run.Render())
			lastBlock = false
		case Glyph:
			r.inline(glyphs[n.Kind])
			lastBlock = false
		case Break:
			r.request(reqBreak)
		case Comment:
			r.comment(n.Text)
		default:
			r.endLine()
			if lastBlock {
				r.b.WriteString(spacer + "\n")
			}
			r.block(n)
			lastBlock = true
		}
	}
	r.endLine()
}

func (r *renderer) comment(text string) {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if text == "" {
		r.request(reqComment)
		return
	}
	r.request(reqComment, text)
}

func (r *renderer) block(n Node) {
	switch n := n.(type) {
	case Paragraph:
		r.request(reqParagraph)
		r.textLine(n.Runs...)
	case IndentedParagraph:
		indent := n.Indent
		if indent <= 0 {
			indent = DefaultIndent
		}
		r.request(reqIndented, arg(n.Title), strconv.Itoa(indent))
		r.textLine(n.Runs...)
	case TaggedParagraph:
		r.request(reqTagged)
		r.textLine(n.Tag)
		r.textLine(n.Runs...)
	case Example:
		r.request(reqExample)
		for _, line := range n.Lines {
			r.b.WriteString(line)
			r.b.WriteByte('\n')
		}
		r.request(reqExampleEnd)
	case Synopsis:
		r.synopsis(n)
	case URL:
		r.request(reqURL, arg(n.Target))
		r.textLine(Plain(n.Label))
		r.request(reqURLEnd)
	case Email:
		r.request(reqMail, arg(n.Address))
		r.textLine(Plain(n.Label))
		r.request(reqMailEnd)
	case Nested:
		r.request(reqIndent)
		r.body(n.Nodes)
		r.request(reqIndentEnd)
	}
}

func (r *renderer) synopsis(s Synopsis) {
	r.request(reqSynopsis, arg(s.Name))
	r.textLine(s.Description...)
	for _, opt := range s.Options {
		args := []string{arg(opt.Flag)}
		if opt.Argument != "" {
			args = append(args, arg(opt.Argument))
		}
		r.request(reqOption, args...)
		r.textLine(opt.Description...)
	}
	r.request(reqSynopsisEnd)
}
