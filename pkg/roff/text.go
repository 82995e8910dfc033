package roff

import "strings"

// Font escapes.
const (
	fontBold   = `\fB`
	fontItalic = `\fI`
	fontReset  = `\fR`
)

// Style is the font a [Run] is set in. A run carries exactly one style.
type Style uint8

const (
	StyleRoman Style = iota
	StyleBold
	StyleItalic
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	default:
		return "roman"
	}
}

// ParseStyle parses a style name. "", "plain", "roman" and "normal" all map
// to StyleRoman.
func ParseStyle(name string) (Style, bool) {
	switch strings.ToLower(name) {
	case "", "plain", "roman", "normal":
		return StyleRoman, true
	case "bold", "b":
		return StyleBold, true
	case "italic", "i":
		return StyleItalic, true
	}
	return StyleRoman, false
}

// Run is a piece of inline text set in a single style. Runs are values: the
// style methods return a modified copy and the last applied style wins.
type Run struct {
	content string
	style   Style
}

// NewRun returns a roman run holding raw (unescaped) content.
func NewRun(content string) Run {
	return Run{content: content}
}

// Plain is shorthand for NewRun.
func Plain(content string) Run { return NewRun(content) }

// Bold is shorthand for NewRun(content).Bold().
func Bold(content string) Run { return NewRun(content).Bold() }

// Italic is shorthand for NewRun(content).Italic().
func Italic(content string) Run { return NewRun(content).Italic() }

// Bold returns a copy of r set in bold.
func (r Run) Bold() Run {
	r.style = StyleBold
	return r
}

// Italic returns a copy of r set in italics.
func (r Run) Italic() Run {
	r.style = StyleItalic
	return r
}

// Roman returns a copy of r set in the regular font.
func (r Run) Roman() Run {
	r.style = StyleRoman
	return r
}

// WithStyle returns a copy of r set in style s.
func (r Run) WithStyle(s Style) Run {
	switch s {
	case StyleBold:
		return r.Bold()
	case StyleItalic:
		return r.Italic()
	default:
		return r.Roman()
	}
}

// Content returns the raw content.
func (r Run) Content() string { return r.content }

// Style returns the run's style.
func (r Run) Style() Style { return r.style }

// Render escapes the content and wraps it in font escapes for its style.
func (r Run) Render() string {
	text := Escape(r.content)
	switch r.style {
	case StyleBold:
		return fontBold + text + fontReset
	case StyleItalic:
		return fontItalic + text + fontReset
	default:
		return text
	}
}

// RenderRuns concatenates the renderings of runs with no separator.
func RenderRuns(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Render())
	}
	return b.String()
}
