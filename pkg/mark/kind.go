package mark

// Kind identifies the type of a node.
type Kind uint8

const (
	KindRaw Kind = iota
	KindPlainText
	KindLineBreak
	KindLink
	KindImage
	KindEmphasis
	KindHighlight
	KindStrikethrough
	KindSubscript
	KindSuperscript
	KindInlineCode
	KindLatex
	KindNewline
	KindHeading
	KindParagraph
	KindBlockquote
	KindList
	KindListItem
	KindFencedCodeBlock
	KindHorizontalRule
	KindTable
	KindTableRow
	KindTableSeparator
	KindTableCell
)

//nolint:gochecknoglobals // Read-only lookup table
var kindNames = [...]string{
	KindRaw:             "Raw",
	KindPlainText:       "PlainText",
	KindLineBreak:       "LineBreak",
	KindLink:            "Link",
	KindImage:           "Image",
	KindEmphasis:        "Emphasis",
	KindHighlight:       "Highlight",
	KindStrikethrough:   "Strikethrough",
	KindSubscript:       "Subscript",
	KindSuperscript:     "Superscript",
	KindInlineCode:      "InlineCode",
	KindLatex:           "Latex",
	KindNewline:         "Newline",
	KindHeading:         "Heading",
	KindParagraph:       "Paragraph",
	KindBlockquote:      "Blockquote",
	KindList:            "List",
	KindListItem:        "ListItem",
	KindFencedCodeBlock: "FencedCodeBlock",
	KindHorizontalRule:  "HorizontalRule",
	KindTable:           "Table",
	KindTableRow:        "TableRow",
	KindTableSeparator:  "TableSeparator",
	KindTableCell:       "TableCell",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

func (Raw) Kind() Kind             { return KindRaw }
func (PlainText) Kind() Kind       { return KindPlainText }
func (LineBreak) Kind() Kind       { return KindLineBreak }
func (Link) Kind() Kind            { return KindLink }
func (Image) Kind() Kind           { return KindImage }
func (Emphasis) Kind() Kind        { return KindEmphasis }
func (Highlight) Kind() Kind       { return KindHighlight }
func (Strikethrough) Kind() Kind   { return KindStrikethrough }
func (Subscript) Kind() Kind       { return KindSubscript }
func (Superscript) Kind() Kind     { return KindSuperscript }
func (InlineCode) Kind() Kind      { return KindInlineCode }
func (Latex) Kind() Kind           { return KindLatex }
func (Newline) Kind() Kind         { return KindNewline }
func (Heading) Kind() Kind         { return KindHeading }
func (Paragraph) Kind() Kind       { return KindParagraph }
func (Blockquote) Kind() Kind      { return KindBlockquote }
func (List) Kind() Kind            { return KindList }
func (FencedCodeBlock) Kind() Kind { return KindFencedCodeBlock }
func (HorizontalRule) Kind() Kind  { return KindHorizontalRule }
func (Table) Kind() Kind           { return KindTable }
func (ListItem) Kind() Kind        { return KindListItem }
func (TableRow) Kind() Kind        { return KindTableRow }
func (SeparatorRow) Kind() Kind    { return KindTableSeparator }
func (TableCell) Kind() Kind       { return KindTableCell }
