// Package mark parses Markdown into a lossless syntax tree.
//
// Every node keeps the exact delimiter tokens it was parsed from, so
// Stringify reproduces the input byte for byte. Parsing is total: input the
// grammar does not recognise ends up in a Raw node.
package mark

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

// Token is a run of source characters with their positions.
type Token = parsec.Text

// Mark is any node of the tree.
type Mark interface {
	Kind() Kind
	Stringify() string
	isMark()
}

// Inline is a node that lives inside a line of text.
type Inline interface {
	Mark
	isInline()
}

// Block is a node that structures the document.
type Block interface {
	Mark
	isBlock()
}

// Raw holds input the grammar could not interpret.
type Raw struct {
	Value Token
}

// PlainText is a run of text with no markup.
type PlainText struct {
	Value Token
}

// LineBreak is a newline inside a paragraph.
type LineBreak struct {
	Newline Token
}

// Bracketed is content between an opening and a closing token.
type Bracketed[C any] struct {
	Open    Token
	Content C
	Close   Token
}

// LinkTitle is the optional quoted title after a link destination.
type LinkTitle struct {
	Space Token
	Open  Token
	Text  Token
	Close Token
}

// Link is [text](destination "title").
type Link struct {
	Text        Bracketed[[]Inline]
	OpenParen   Token
	Destination Token
	Title       *LinkTitle
	CloseParen  Token
}

// Image is a link preceded by a bang.
type Image struct {
	Bang Token
	Link Link
}

// Delimited is inline content wrapped in a matching pair of markers.
type Delimited struct {
	Start   Token
	Content []Inline
	End     Token
}

type (
	Emphasis      struct{ Delimited }
	Highlight     struct{ Delimited }
	Strikethrough struct{ Delimited }
	Subscript     struct{ Delimited }
	Superscript   struct{ Delimited }
)

// InlineCode is verbatim text between backtick runs.
type InlineCode struct {
	Start   Token
	Content Token
	End     Token
}

// Latex is a math span. The grammar does not produce it yet.
type Latex struct {
	Start   Token
	Content Token
	End     Token
}

// Newline is a blank line between blocks.
type Newline struct {
	Value Token
}

// Heading is an ATX heading.
type Heading struct {
	Hashes  Token
	Spacing Token
	Content []Inline
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
}

// Blockquote holds the blocks quoted by a run of > lines. Markers holds the
// line-start token of each line, in order.
type Blockquote struct {
	Markers []Token
	Content []Mark
}

// ListKind distinguishes the three list flavours.
type ListKind uint8

const (
	ListUnordered ListKind = iota
	ListOrdered
	ListTask
)

func (k ListKind) String() string {
	switch k {
	case ListOrdered:
		return "ordered"
	case ListTask:
		return "task"
	default:
		return "unordered"
	}
}

// List is a run of items of the same kind.
type List struct {
	ListKind ListKind
	Items    []ListItem
}

// ListItem is one entry of a list.
type ListItem struct {
	// Indent is the whitespace before the marker.
	Indent Token
	// Bullet is "-", "*" or "+", or the number of an ordered item.
	Bullet Token
	// Dot is the delimiter after an ordered item number.
	Dot Token
	// Gap is the whitespace after the marker.
	Gap Token
	// Check is the [ ] or [x] box of a task item.
	Check *Bracketed[Token]
	// CheckGap is the whitespace after the check box.
	CheckGap Token
	// Content is the item body, parsed as a nested document.
	Content []Mark
	// Prefixes is the indentation stripped from each continuation line.
	Prefixes []Token
	// Trailing holds the line end and blank lines that follow the item.
	Trailing Token
}

// FencedCodeBlock is a ``` fenced block. Content starts with the newline
// that ends the info line.
type FencedCodeBlock struct {
	Open    Token
	Info    Token
	Content Token
	Close   Token
}

// HorizontalRule is a thematic break such as *** or ---.
type HorizontalRule struct {
	Rule     Token
	Trailing Token
}

// Alignment of a table column.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

// TableCell is the raw content of one cell and the pipe that ends it.
type TableCell struct {
	Content Inline
	Pipe    Token
}

// TableRow is one line of a table.
type TableRow struct {
	Leading Token
	Cells   []TableCell
	Newline Token
}

// SeparatorCell is one column of the delimiter row, e.g. " :---: ".
type SeparatorCell struct {
	Content Token
	Pipe    Token
}

// SeparatorRow is the delimiter row between the header and the body.
type SeparatorRow struct {
	Leading Token
	Cells   []SeparatorCell
	Newline Token
}

// Table is a pipe table.
type Table struct {
	Header    TableRow
	Separator SeparatorRow
	Rows      []TableRow
}

func (Raw) isMark()             {}
func (PlainText) isMark()       {}
func (LineBreak) isMark()       {}
func (Link) isMark()            {}
func (Image) isMark()           {}
func (Emphasis) isMark()        {}
func (Highlight) isMark()       {}
func (Strikethrough) isMark()   {}
func (Subscript) isMark()       {}
func (Superscript) isMark()     {}
func (InlineCode) isMark()      {}
func (Latex) isMark()           {}
func (Newline) isMark()         {}
func (Heading) isMark()         {}
func (Paragraph) isMark()       {}
func (Blockquote) isMark()      {}
func (List) isMark()            {}
func (FencedCodeBlock) isMark() {}
func (HorizontalRule) isMark()  {}
func (Table) isMark()           {}

// Items, rows and cells are Marks so that a walk reaches them, but they
// only appear inside their container.
func (ListItem) isMark()        {}
func (TableRow) isMark()        {}
func (SeparatorRow) isMark()    {}
func (TableCell) isMark()       {}

func (Raw) isInline()           {}
func (PlainText) isInline()     {}
func (LineBreak) isInline()     {}
func (Link) isInline()          {}
func (Image) isInline()         {}
func (Emphasis) isInline()      {}
func (Highlight) isInline()     {}
func (Strikethrough) isInline() {}
func (Subscript) isInline()     {}
func (Superscript) isInline()   {}
func (InlineCode) isInline()    {}
func (Latex) isInline()         {}

func (Newline) isBlock()         {}
func (Heading) isBlock()         {}
func (Paragraph) isBlock()       {}
func (Blockquote) isBlock()      {}
func (List) isBlock()            {}
func (FencedCodeBlock) isBlock() {}
func (HorizontalRule) isBlock()  {}
func (Table) isBlock()           {}

// Level returns the heading level, 1 to 6.
func (h Heading) Level() int {
	return h.Hashes.Len()
}

// Language returns the first word of the info string.
func (c FencedCodeBlock) Language() string {
	fields := strings.Fields(c.Info.String())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Code returns the block body without the newline that ends the info line
// and the one before the closing fence.
func (c FencedCodeBlock) Code() string {
	code := strings.TrimPrefix(c.Content.String(), "\n")
	return strings.TrimSuffix(code, "\n")
}

// Number returns the number of an ordered item, or 0.
func (i ListItem) Number() int {
	n, err := strconv.Atoi(i.Bullet.String())
	if err != nil {
		return 0
	}
	return n
}

// IsTask reports whether the item carries a check box.
func (i ListItem) IsTask() bool {
	return i.Check != nil
}

// Checked reports whether the item is a ticked task.
func (i ListItem) Checked() bool {
	if i.Check == nil {
		return false
	}
	mark := i.Check.Content.String()
	return mark == "x" || mark == "X"
}

// Alignment returns the column alignment encoded by the cell's colons.
func (c SeparatorCell) Alignment() Alignment {
	spec := strings.TrimSpace(c.Content.String())
	left := strings.HasPrefix(spec, ":")
	right := strings.HasSuffix(spec, ":")
	switch {
	case left && right:
		return AlignCenter
	case left:
		return AlignLeft
	case right:
		return AlignRight
	default:
		return AlignNone
	}
}

// Alignments returns the alignment of every column.
func (t Table) Alignments() []Alignment {
	aligns := make([]Alignment, 0, len(t.Separator.Cells))
	for _, cell := range t.Separator.Cells {
		aligns = append(aligns, cell.Alignment())
	}
	return aligns
}
