package mark

import (
	"strings"

	"github.com/yaklabco/mdparsec/pkg/mdast"
	"github.com/yaklabco/mdparsec/pkg/parsec"
)

// Lower converts d into the neutral mdast tree shared with the goldmark
// reference parser. Delimiter tokens are dropped. Blank lines are dropped
// and every other node keeps its source span.
func Lower(d Document) *mdast.Node {
	root := mdast.NewDocument()
	for _, m := range d.Marks {
		if node := lowerMark(m); node != nil {
			mdast.AppendChild(root, node)
		}
	}
	return root
}

func lowerMark(m Mark) *mdast.Node {
	var node *mdast.Node

	switch n := m.(type) {
	case Newline:
		return nil
	case Raw:
		node = textNode(mdast.NodeRaw, n.Value.String())
	case PlainText:
		node = textNode(mdast.NodeText, n.Value.String())
	case LineBreak:
		node = mdast.NewNode(mdast.NodeSoftBreak)
	case InlineCode:
		node = textNode(mdast.NodeCodeSpan, n.Content.String())
	case Latex:
		node = textNode(mdast.NodeMath, n.Content.String())
	case Emphasis:
		return lowerEmphasis(n)
	case Highlight:
		node = lowerContainer(mdast.NodeHighlight, n.Content)
	case Strikethrough:
		node = lowerContainer(mdast.NodeStrikethrough, n.Content)
	case Subscript:
		node = lowerContainer(mdast.NodeSubscript, n.Content)
	case Superscript:
		node = lowerContainer(mdast.NodeSuperscript, n.Content)
	case Link:
		node = lowerLink(mdast.NodeLink, n)
	case Image:
		node = lowerLink(mdast.NodeImage, n.Link)
	case Heading:
		node = lowerContainer(mdast.NodeHeading, n.Content)
		node.Block = mdast.NewBlockAttrs().WithHeadingLevel(n.Level())
	case Paragraph:
		node = lowerContainer(mdast.NodeParagraph, n.Content)
	case Blockquote:
		node = lowerContainer(mdast.NodeBlockquote, n.Content)
	case List:
		node = lowerList(n)
	case ListItem:
		node = lowerContainer(mdast.NodeListItem, n.Content)
		if n.IsTask() {
			node.Block = mdast.NewBlockAttrs().WithTask(&mdast.TaskAttrs{Checked: n.Checked()})
		}
	case FencedCodeBlock:
		node = textNode(mdast.NodeCodeBlock, n.Code())
		node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{
			FenceChar:   '`',
			FenceLength: n.Open.Len(),
			Info:        strings.TrimSpace(n.Info.String()),
			Language:    n.Language(),
		})
	case HorizontalRule:
		node = mdast.NewNode(mdast.NodeThematicBreak)
	case Table:
		node = lowerTable(n)
	case TableRow:
		node = lowerContainer(mdast.NodeTableRow, n.Cells)
	case TableCell:
		node = mdast.NewNode(mdast.NodeTableCell)
		if text := strings.TrimSpace(n.Content.Stringify()); text != "" {
			mdast.AppendChild(node, mdast.NewText(text))
		}
	default:
		return nil
	}

	node.Pos = sourcePosition(m)
	return node
}

func textNode(kind mdast.NodeKind, text string) *mdast.Node {
	node := mdast.NewNode(kind)
	node.Inline = mdast.NewInlineAttrs().WithText([]byte(text))
	return node
}

func lowerContainer[M Mark](kind mdast.NodeKind, children []M) *mdast.Node {
	node := mdast.NewNode(kind)
	for _, child := range children {
		if lowered := lowerMark(child); lowered != nil {
			mdast.AppendChild(node, lowered)
		}
	}
	return node
}

// lowerEmphasis maps * to Emphasis, ** to Strong and *** to an Emphasis
// wrapping a Strong.
func lowerEmphasis(e Emphasis) *mdast.Node {
	level := e.Start.Len()
	pos := sourcePosition(e)

	kind := mdast.NodeEmphasis
	if level == 2 {
		kind = mdast.NodeStrong
	}
	inner := lowerContainer(kind, e.Content)
	inner.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(min(level, 2))
	inner.Pos = pos
	if level < 3 {
		return inner
	}

	inner.Kind = mdast.NodeStrong
	outer := mdast.NewNode(mdast.NodeEmphasis)
	outer.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(1)
	outer.Pos = pos
	mdast.AppendChild(outer, inner)
	return outer
}

func lowerLink(kind mdast.NodeKind, l Link) *mdast.Node {
	node := lowerContainer(kind, l.Text.Content)
	attrs := &mdast.LinkAttrs{Destination: l.Destination.String()}
	if l.Title != nil {
		attrs.Title = l.Title.Text.String()
	}
	node.Inline = mdast.NewInlineAttrs().WithLink(attrs)
	return node
}

func lowerList(l List) *mdast.Node {
	node := lowerContainer(mdast.NodeList, l.Items)

	attrs := &mdast.ListAttrs{
		Ordered: l.ListKind == ListOrdered,
		Task:    l.ListKind == ListTask,
		Tight:   true,
	}
	if len(l.Items) > 0 {
		first := l.Items[0]
		if attrs.Ordered {
			attrs.StartNumber = first.Number()
			attrs.Delimiter = first.Dot.String()
		} else {
			attrs.BulletMarker = first.Bullet.String()
		}
	}
	for i, item := range l.Items {
		if i < len(l.Items)-1 && strings.Count(item.Trailing.String(), "\n") > 1 {
			attrs.Tight = false
		}
	}

	node.Block = mdast.NewBlockAttrs().WithList(attrs)
	return node
}

func lowerTable(t Table) *mdast.Node {
	node := mdast.NewNode(mdast.NodeTable)
	mdast.AppendChild(node, lowerMark(t.Header))
	for _, row := range t.Rows {
		mdast.AppendChild(node, lowerMark(row))
	}

	aligns := make([]string, 0, len(t.Separator.Cells))
	for _, align := range t.Alignments() {
		aligns = append(aligns, align.String())
	}
	node.Block = mdast.NewBlockAttrs().WithTable(&mdast.TableAttrs{Alignments: aligns})
	return node
}

func sourcePosition(m Mark) mdast.SourcePosition {
	start, end, ok := Span(m)
	if !ok {
		return mdast.SourcePosition{}
	}
	return mdast.Span(toPosition(start), toPosition(end))
}

func toPosition(p parsec.Position) mdast.Position {
	return mdast.Position{Line: p.Line + 1, Column: p.Column + 1}
}
