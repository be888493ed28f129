// Package prettytree renders mark syntax trees as indented, optionally
// coloured, terminal trees.
package prettytree

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/mdparsec/pkg/mark"
)

// Tree is a display node: a label, an optional literal value, the source
// span and the children.
type Tree struct {
	Label    string
	Value    string
	HasValue bool
	Span     string
	Children []*Tree
}

// FromDocument builds the display tree of a whole document.
func FromDocument(d mark.Document) *Tree {
	root := &Tree{Label: "Document"}
	for _, m := range d.Marks {
		root.Children = append(root.Children, ToTree(m))
	}
	return root
}

// ToTree builds the display tree of m and its descendants.
func ToTree(m mark.Mark) *Tree {
	node := &Tree{Label: label(m)}
	if value, ok := leafValue(m); ok {
		node.Value = value
		node.HasValue = true
	}
	if start, end, ok := mark.Span(m); ok {
		node.Span = start.String() + "-" + end.String()
	}
	for _, child := range mark.Children(m) {
		node.Children = append(node.Children, ToTree(child))
	}
	return node
}

func label(m mark.Mark) string {
	kind := m.Kind().String()
	switch n := m.(type) {
	case mark.Emphasis:
		return fmt.Sprintf("%s(%s)", kind, n.Start)
	case mark.Heading:
		return fmt.Sprintf("%s(%d)", kind, n.Level())
	case mark.List:
		return fmt.Sprintf("%s(%s)", kind, n.ListKind)
	case mark.ListItem:
		switch {
		case n.IsTask():
			return fmt.Sprintf("%s(checked=%t)", kind, n.Checked())
		case n.Number() > 0:
			return fmt.Sprintf("%s(%d)", kind, n.Number())
		}
	case mark.FencedCodeBlock:
		if lang := n.Language(); lang != "" {
			return fmt.Sprintf("%s(%s)", kind, lang)
		}
	case mark.Link:
		return fmt.Sprintf("%s(%s)", kind, n.Destination)
	case mark.Image:
		return fmt.Sprintf("%s(%s)", kind, n.Link.Destination)
	}
	return kind
}

func leafValue(m mark.Mark) (string, bool) {
	switch n := m.(type) {
	case mark.PlainText:
		return n.Value.String(), true
	case mark.Raw:
		return n.Value.String(), true
	case mark.LineBreak:
		return n.Newline.String(), true
	case mark.Newline:
		return n.Value.String(), true
	case mark.InlineCode:
		return n.Content.String(), true
	case mark.Latex:
		return n.Content.String(), true
	case mark.FencedCodeBlock:
		return n.Code(), true
	case mark.HorizontalRule:
		return n.Rule.String(), true
	case mark.SeparatorRow:
		return n.Stringify(), true
	default:
		return "", false
	}
}

// quote renders a value as a Go string literal cut to width characters.
// A width of zero or less disables the cut.
func quote(value string, width int) string {
	quoted := strconv.Quote(value)
	runes := []rune(quoted)
	if width <= 0 || len(runes) <= width {
		return quoted
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
