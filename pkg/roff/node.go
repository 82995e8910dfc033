package roff

// DefaultIndent is the indentation of an [IndentedParagraph] whose Indent
// is unset.
const DefaultIndent = 4

// Node is one element of a section body. The set of variants is closed.
type Node interface {
	isNode()
}

// Text is inline content appended at the current output position.
type Text struct {
	Run Run
}

// Paragraph is a standalone block of prose.
type Paragraph struct {
	Runs []Run
}

// IndentedParagraph is an indented block with an optional hanging title.
// An Indent of zero or less means DefaultIndent.
type IndentedParagraph struct {
	Runs   []Run
	Indent int
	Title  string
}

// TaggedParagraph is a block whose first line is a tag, with the body
// indented below it.
type TaggedParagraph struct {
	Tag  Run
	Runs []Run
}

// Example is a literal block. Its lines are written verbatim.
type Example struct {
	Lines []string
}

// SynopsisOption is one option of a [Synopsis]. Flag is required; an empty
// Argument means the option takes none.
type SynopsisOption struct {
	Flag        string
	Argument    string
	Description []Run
}

// Synopsis summarizes how a command is invoked.
type Synopsis struct {
	Name        string
	Description []Run
	Options     []SynopsisOption
}

// URL is a hyperlink. Label is the visible text.
type URL struct {
	Label  string
	Target string
}

// Email is a mail link. Label is the visible text.
type Email struct {
	Label   string
	Address string
}

// Nested indents its nodes relative to the surrounding text.
type Nested struct {
	Nodes []Node
}

// Break forces a line break.
type Break struct{}

// Comment is a source comment that formatters discard.
type Comment struct {
	Text string
}

// GlyphKind selects a special character.
type GlyphKind uint8

const (
	TrademarkSign GlyphKind = iota
	RegisteredSign
	LeftQuote
	RightQuote
	EmDash
	EnDash
	NonBreakingSpace
)

// glyphs maps each kind to its named special-character escape.
var glyphs = map[GlyphKind]string{
	TrademarkSign:    `\(tm`,
	RegisteredSign:   `\(rg`,
	LeftQuote:        `\(lq`,
	RightQuote:       `\(rq`,
	EmDash:           `\(em`,
	EnDash:           `\(en`,
	NonBreakingSpace: `\~`,
}

// Glyph is an inline special character.
type Glyph struct {
	Kind GlyphKind
}

// Trademark returns the trademark sign glyph.
func Trademark() Glyph { return Glyph{Kind: TrademarkSign} }

func (Text) isNode()              {}
func (Paragraph) isNode()         {}
func (IndentedParagraph) isNode() {}
func (TaggedParagraph) isNode()   {}
func (Example) isNode()           {}
func (Synopsis) isNode()          {}
func (URL) isNode()               {}
func (Email) isNode()             {}
func (Nested) isNode()            {}
func (Break) isNode()             {}
func (Comment) isNode()           {}
func (Glyph) isNode()             {}
