package roff

import "strings"

// escaper doubles backslashes, then escapes hyphens and periods.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`-`, `\-`,
	`.`, `\.`,
)

// Escape converts raw text into text that roff prints literally.
// It is total: every input has an escaped form, and "" maps to "".
func Escape(raw string) string {
	if raw == "" {
		return ""
	}
	return escaper.Replace(raw)
}

// guardLines neutralises apostrophes that would start an output line.
// atLineStart reports whether s is written at the beginning of a line.
func guardLines(s string, atLineStart bool) string {
	if atLineStart && strings.HasPrefix(s, "'") {
		s = `\&` + s
	}
	return strings.ReplaceAll(s, "\n'", "\n\\&'")
}

// quoteArg formats an already escaped macro argument.
func quoteArg(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\n") || strings.HasPrefix(s, `"`) {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// lineBreaks folds line breaks into spaces. A macro argument must stay on
// its request line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// arg escapes and quotes a raw macro argument.
func arg(raw string) string {
	return quoteArg(Escape(lineBreaks.Replace(raw)))
}
