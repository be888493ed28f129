package goldmark

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/mdparsec/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	content []byte
	index   *mdast.LineIndex
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content, index: mdast.NewLineIndex(content)}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren maps all children of a goldmark node and appends them to parent.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if text, ok := child.(*ast.Text); ok {
			for _, node := range m.mapText(text) {
				mdast.AppendChild(parent, node)
			}
			continue
		}
		if mdNode := m.mapNode(child); mdNode != nil {
			mdast.AppendChild(parent, mdNode)
		}
	}
}

// mapNode converts a single goldmark node. It returns nil for nodes that
// only annotate their parent, such as task check boxes.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		node = m.container(mdast.NodeHeading, gmn)
		node.Block = mdast.NewBlockAttrs().WithHeadingLevel(gmn.Level)

	case *ast.Paragraph, *ast.TextBlock:
		node = m.container(mdast.NodeParagraph, gmn)

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = m.container(mdast.NodeListItem, gmn)
		if cb := taskCheckBox(gmn); cb != nil {
			node.Block = mdast.NewBlockAttrs().WithTask(&mdast.TaskAttrs{Checked: cb.IsChecked})
		}

	case *ast.Blockquote:
		node = m.container(mdast.NodeBlockquote, gmn)

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = mdast.NewNode(mdast.NodeCodeBlock)
		node.Block = mdast.NewBlockAttrs().WithCodeBlock(&mdast.CodeBlockAttrs{Indented: true})
		node.Inline = mdast.NewInlineAttrs().WithText(m.linesText(gmn))

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)

	// Inline-level nodes.
	case *ast.Emphasis:
		kind := mdast.NodeEmphasis
		if gmn.Level == 2 {
			kind = mdast.NodeStrong
		}
		node = m.container(kind, gmn)
		node.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(gmn.Level)

	case *ast.CodeSpan:
		node = mdast.NewNode(mdast.NodeCodeSpan)
		node.Inline = mdast.NewInlineAttrs().WithText(m.childText(gmn))

	case *ast.Link:
		node = m.container(mdast.NodeLink, gmn)
		node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
			Destination: string(gmn.Destination),
			Title:       string(gmn.Title),
		})

	case *ast.Image:
		node = m.container(mdast.NodeImage, gmn)
		node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
			Destination: string(gmn.Destination),
			Title:       string(gmn.Title),
		})

	case *ast.AutoLink:
		node = mdast.NewNode(mdast.NodeLink)
		node.Inline = mdast.NewInlineAttrs().WithLink(&mdast.LinkAttrs{
			Destination: string(gmn.URL(m.content)),
			Autolink:    true,
		})
		mdast.AppendChild(node, mdast.NewText(string(gmn.Label(m.content))))

	case *ast.RawHTML:
		node = mdast.NewNode(mdast.NodeHTMLInline)

	case *ast.String:
		node = mdast.NewText(string(gmn.Value))

	// GFM extension nodes.
	case *east.Strikethrough:
		node = m.container(mdast.NodeStrikethrough, gmn)

	case *east.TaskCheckBox:
		return nil

	case *east.Table:
		node = m.mapTable(gmn)

	case *east.TableHeader:
		node = m.container(mdast.NodeTableRow, gmn)

	case *east.TableRow:
		node = m.container(mdast.NodeTableRow, gmn)

	case *east.TableCell:
		node = m.container(mdast.NodeTableCell, gmn)

	default:
		node = m.container(mdast.NodeRaw, gmNode)
	}

	node.Pos = m.position(gmNode)
	return node
}

func (m *mapper) container(kind mdast.NodeKind, gmNode ast.Node) *mdast.Node {
	node := mdast.NewNode(kind)
	m.mapChildren(gmNode, node)
	return node
}

// mapList converts a goldmark List. For ordered lists goldmark records the
// delimiter as the marker.
func (m *mapper) mapList(list *ast.List) *mdast.Node {
	node := m.container(mdast.NodeList, list)

	attrs := &mdast.ListAttrs{
		Ordered: list.IsOrdered(),
		Tight:   list.IsTight,
		Task:    list.ChildCount() > 0,
	}
	if list.IsOrdered() {
		attrs.StartNumber = list.Start
		attrs.Delimiter = string(list.Marker)
	} else {
		attrs.BulletMarker = string(list.Marker)
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if taskCheckBox(item) == nil {
			attrs.Task = false
			break
		}
	}

	node.Block = mdast.NewBlockAttrs().WithList(attrs)
	return node
}

// taskCheckBox returns the check box that opens a list item, if any.
func taskCheckBox(item ast.Node) *east.TaskCheckBox {
	block := item.FirstChild()
	if block == nil {
		return nil
	}
	cb, _ := block.FirstChild().(*east.TaskCheckBox)
	return cb
}

func (m *mapper) mapFencedCodeBlock(codeBlock *ast.FencedCodeBlock) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	attrs := &mdast.CodeBlockAttrs{FenceChar: '`', FenceLength: 3}
	if codeBlock.Info != nil {
		attrs.Info = string(codeBlock.Info.Value(m.content))
	}
	if lang := codeBlock.Language(m.content); lang != nil {
		attrs.Language = string(lang)
	}
	if start, _ := m.byteRange(codeBlock); start >= 0 {
		attrs.FenceChar, attrs.FenceLength = m.fenceBefore(start)
	}

	node.Block = mdast.NewBlockAttrs().WithCodeBlock(attrs)
	node.Inline = mdast.NewInlineAttrs().WithText(trimFinalNewline(m.linesText(codeBlock)))
	return node
}

// fenceBefore reads the fence on the line above the first content line.
func (m *mapper) fenceBefore(contentStart int) (byte, int) {
	lineStart := contentStart
	for lineStart > 0 && m.content[lineStart-1] != '\n' {
		lineStart--
	}
	if lineStart == 0 {
		return '`', 3
	}
	prev := lineStart - 1
	for prev > 0 && m.content[prev-1] != '\n' {
		prev--
	}

	pos := prev
	for pos < lineStart && (m.content[pos] == ' ' || m.content[pos] == '\t') {
		pos++
	}
	if pos >= lineStart || (m.content[pos] != '`' && m.content[pos] != '~') {
		return '`', 3
	}
	fenceChar := m.content[pos]
	length := 0
	for pos < lineStart && m.content[pos] == fenceChar {
		length++
		pos++
	}
	return fenceChar, max(length, 3)
}

// mapText converts a goldmark Text node. A text node that ends its line
// yields the text followed by a break node.
func (m *mapper) mapText(textNode *ast.Text) []*mdast.Node {
	var nodes []*mdast.Node
	if value := textNode.Value(m.content); len(value) > 0 {
		text := mdast.NewText(string(value))
		text.Pos = m.position(textNode)
		nodes = append(nodes, text)
	}
	switch {
	case textNode.HardLineBreak():
		nodes = append(nodes, mdast.NewNode(mdast.NodeHardBreak))
	case textNode.SoftLineBreak():
		nodes = append(nodes, mdast.NewNode(mdast.NodeSoftBreak))
	}
	return nodes
}

func (m *mapper) mapTable(table *east.Table) *mdast.Node {
	node := m.container(mdast.NodeTable, table)

	aligns := make([]string, 0, len(table.Alignments))
	for _, align := range table.Alignments {
		aligns = append(aligns, align.String())
	}
	node.Block = mdast.NewBlockAttrs().WithTable(&mdast.TableAttrs{Alignments: aligns})
	return node
}

func (m *mapper) childText(gmNode ast.Node) []byte {
	var text []byte
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			text = append(text, c.Value(m.content)...)
		case *ast.String:
			text = append(text, c.Value...)
		}
	}
	return text
}

func (m *mapper) linesText(gmNode ast.Node) []byte {
	var text []byte
	lines := gmNode.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		text = append(text, seg.Value(m.content)...)
	}
	return text
}

func trimFinalNewline(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		return b[:n-1]
	}
	return b
}

// position converts the byte range of a goldmark node to line/column form.
func (m *mapper) position(gmNode ast.Node) mdast.SourcePosition {
	start, end := m.byteRange(gmNode)
	if start < 0 || end < start {
		return mdast.SourcePosition{}
	}
	return mdast.Span(m.index.PositionAt(start), m.index.PositionAt(end))
}

// byteRange returns the byte range goldmark recorded for a node, or -1, -1.
// Block nodes report their content lines; inline nodes the segments of
// their text descendants.
func (m *mapper) byteRange(gmNode ast.Node) (int, int) {
	if gmNode.Type() == ast.TypeBlock {
		lines := gmNode.Lines()
		if lines.Len() > 0 {
			return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
		}
	}

	start, end := -1, -1
	extend := func(s, e int) {
		if start == -1 || s < start {
			start = s
		}
		if e > end {
			end = e
		}
	}
	//nolint:errcheck // the walker never returns an error
	ast.Walk(gmNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch c := n.(type) {
		case *ast.Text:
			extend(c.Segment.Start, c.Segment.Stop)
		case *ast.RawHTML:
			for i := range c.Segments.Len() {
				seg := c.Segments.At(i)
				extend(seg.Start, seg.Stop)
			}
		default:
			if n.Type() == ast.TypeBlock && n != gmNode && n.Lines().Len() > 0 {
				lines := n.Lines()
				extend(lines.At(0).Start, lines.At(lines.Len()-1).Stop)
				return ast.WalkSkipChildren, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return start, end
}
