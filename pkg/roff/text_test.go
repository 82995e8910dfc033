package roff

import "testing"

func TestRunRender(t *testing.T) {
	tests := []struct {
		name string
		run  Run
		want string
	}{
		{"bold", Bold("right."), `\fBright\.\fR`},
		{"italic", Italic("x-y"), `\fIx\-y\fR`},
		{"plain", Plain("a.b"), `a\.b`},
		{"empty plain", Plain(""), ""},
		{"empty bold", Bold(""), `\fB\fR`},
		{"zero value", Run{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunStyleLastWins(t *testing.T) {
	base := NewRun("text")
	r := base.Bold().Italic()

	if r.Style() != StyleItalic {
		t.Errorf("Style() = %v, want %v", r.Style(), StyleItalic)
	}
	if r.Content() != "text" {
		t.Errorf("Content() = %q, want %q", r.Content(), "text")
	}
	if base.Style() != StyleRoman {
		t.Errorf("base Style() = %v, want %v (runs are values)", base.Style(), StyleRoman)
	}
	if got := r.Roman().Render(); got != "text" {
		t.Errorf("Roman().Render() = %q", got)
	}
}

func TestRunWithStyle(t *testing.T) {
	for _, s := range []Style{StyleRoman, StyleBold, StyleItalic} {
		if got := Plain("x").WithStyle(s).Style(); got != s {
			t.Errorf("WithStyle(%v).Style() = %v", s, got)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	runs := []Run{Plain("this is "), Bold("special"), Plain(" text")}
	want := `this is \fBspecial\fR text`
	if got := RenderRuns(runs); got != want {
		t.Errorf("RenderRuns() = %q, want %q", got, want)
	}
	if got := RenderRuns([]Run{Plain("a"), Plain("b")}); got != "ab" {
		t.Errorf("RenderRuns() inserted a separator: %q", got)
	}
	if got := RenderRuns(nil); got != "" {
		t.Errorf("RenderRuns(nil) = %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in     string
		want   Style
		wantOK bool
	}{
		{"", StyleRoman, true},
		{"plain", StyleRoman, true},
		{"Roman", StyleRoman, true},
		{"bold", StyleBold, true},
		{"B", StyleBold, true},
		{"italic", StyleItalic, true},
		{"underline", StyleRoman, false},
	}

	for _, tt := range tests {
		got, ok := ParseStyle(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStyleString(t *testing.T) {
	if StyleBold.String() != "bold" || StyleItalic.String() != "italic" || StyleRoman.String() != "roman" {
		t.Errorf("unexpected style names: %s %s %s", StyleRoman, StyleBold, StyleItalic)
	}
}
