package mdast

import (
	"fmt"
	"strings"
)

// BlockOutline describes the block structure under root as one line per
// block, indented by nesting depth. Inline content, positions and
// presentation details such as bullet characters are left out, so two
// parsers that agree on structure produce equal outlines.
func BlockOutline(root *Node) []string {
	out, _ := BlockOutlineLines(root)
	return out
}

// BlockOutlineLines is BlockOutline together with the 1-based source line
// each block starts on, or 0 where the parser recorded no position.
func BlockOutlineLines(root *Node) ([]string, []int) {
	var out []string
	var lines []int
	for n, depth := range Blocks(root) {
		out = append(out, strings.Repeat("  ", depth)+describeBlock(n))
		lines = append(lines, n.Pos.StartLine)
	}
	return out, lines
}

func describeBlock(n *Node) string {
	switch {
	case n.Kind == NodeHeading && n.Block != nil:
		return fmt.Sprintf("%s level=%d", n.Kind, n.Block.HeadingLevel)
	case n.Kind == NodeList && n.Block != nil && n.Block.List != nil:
		kind := "bullet"
		if n.Block.List.Ordered {
			kind = "ordered"
		}
		return fmt.Sprintf("%s %s items=%d", n.Kind, kind, n.ChildCount())
	case n.Kind == NodeCodeBlock && n.Block != nil && n.Block.CodeBlock != nil:
		return fmt.Sprintf("%s info=%q", n.Kind, n.Block.CodeBlock.Info)
	case n.Kind == NodeTable:
		return fmt.Sprintf("%s rows=%d", n.Kind, n.ChildCount())
	default:
		return n.Kind.String()
	}
}
