package mark

import "github.com/yaklabco/mdparsec/pkg/parsec"

// Children returns the direct child nodes of m.
func Children(m Mark) []Mark {
	switch n := m.(type) {
	case Emphasis:
		return toMarks(n.Content)
	case Highlight:
		return toMarks(n.Content)
	case Strikethrough:
		return toMarks(n.Content)
	case Subscript:
		return toMarks(n.Content)
	case Superscript:
		return toMarks(n.Content)
	case Link:
		return toMarks(n.Text.Content)
	case Image:
		return toMarks(n.Link.Text.Content)
	case Heading:
		return toMarks(n.Content)
	case Paragraph:
		return toMarks(n.Content)
	case Blockquote:
		return n.Content
	case List:
		return toMarks(n.Items)
	case ListItem:
		return n.Content
	case Table:
		children := []Mark{n.Header, n.Separator}
		return append(children, toMarks(n.Rows)...)
	case TableRow:
		return toMarks(n.Cells)
	case TableCell:
		return []Mark{n.Content}
	default:
		return nil
	}
}

func toMarks[M Mark](items []M) []Mark {
	out := make([]Mark, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

// Walk visits m and its descendants in document order. Returning false
// from fn skips the children of the node just visited.
func Walk(m Mark, fn func(Mark) bool) {
	if m == nil || !fn(m) {
		return
	}
	for _, child := range Children(m) {
		Walk(child, fn)
	}
}

// WalkDocument walks every top-level node of d.
func WalkDocument(d Document, fn func(Mark) bool) {
	for _, m := range d.Marks {
		Walk(m, fn)
	}
}

// Tokens returns the delimiter and text tokens held directly by m, not
// those of its children.
func Tokens(m Mark) []Token {
	switch n := m.(type) {
	case Raw:
		return []Token{n.Value}
	case PlainText:
		return []Token{n.Value}
	case LineBreak:
		return []Token{n.Newline}
	case Newline:
		return []Token{n.Value}
	case Emphasis:
		return []Token{n.Start, n.End}
	case Highlight:
		return []Token{n.Start, n.End}
	case Strikethrough:
		return []Token{n.Start, n.End}
	case Subscript:
		return []Token{n.Start, n.End}
	case Superscript:
		return []Token{n.Start, n.End}
	case InlineCode:
		return []Token{n.Start, n.Content, n.End}
	case Latex:
		return []Token{n.Start, n.Content, n.End}
	case Link:
		return linkTokens(n)
	case Image:
		return append([]Token{n.Bang}, linkTokens(n.Link)...)
	case Heading:
		return []Token{n.Hashes, n.Spacing}
	case Blockquote:
		return n.Markers
	case ListItem:
		tokens := []Token{n.Indent, n.Bullet, n.Dot, n.Gap, n.CheckGap, n.Trailing}
		if n.Check != nil {
			tokens = append(tokens, n.Check.Open, n.Check.Content, n.Check.Close)
		}
		return append(tokens, n.Prefixes...)
	case FencedCodeBlock:
		return []Token{n.Open, n.Info, n.Content, n.Close}
	case HorizontalRule:
		return []Token{n.Rule, n.Trailing}
	case TableRow:
		return []Token{n.Leading, n.Newline}
	case TableCell:
		return []Token{n.Pipe}
	case SeparatorRow:
		tokens := []Token{n.Leading, n.Newline}
		for _, cell := range n.Cells {
			tokens = append(tokens, cell.Content, cell.Pipe)
		}
		return tokens
	default:
		return nil
	}
}

func linkTokens(l Link) []Token {
	tokens := []Token{l.Text.Open, l.Text.Close, l.OpenParen, l.Destination, l.CloseParen}
	if l.Title != nil {
		tokens = append(tokens, l.Title.Space, l.Title.Open, l.Title.Text, l.Title.Close)
	}
	return tokens
}

// Span returns the position of the first character of m and the position
// just past its last character. It reports false for nodes that hold no
// characters.
func Span(m Mark) (parsec.Position, parsec.Position, bool) {
	var (
		start, end parsec.Position
		found      bool
	)
	Walk(m, func(n Mark) bool {
		for _, tok := range Tokens(n) {
			first, ok := tok.First()
			if !ok {
				continue
			}
			last, _ := tok.Last()
			if !found || first.Pos.Offset < start.Offset {
				start = first.Pos
			}
			if after := last.Pos.Next(last.Value); !found || after.Offset > end.Offset {
				end = after
			}
			found = true
		}
		return true
	})
	return start, end, found
}
