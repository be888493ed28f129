package mdast

import "iter"

// All yields root and every node below it in document order.
func All(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		preorder(root, yield)
	}
}

func preorder(n *Node, yield func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		if !preorder(child, yield) {
			return false
		}
	}
	return true
}

// Blocks yields the block nodes below root in document order together with
// their nesting depth; root's own children are at depth 0. Inline nodes are
// not descended into.
func Blocks(root *Node) iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		var visit func(n *Node, depth int) bool
		visit = func(n *Node, depth int) bool {
			for child := n.FirstChild; child != nil; child = child.Next {
				if !child.IsBlock() {
					continue
				}
				if !yield(child, depth) || !visit(child, depth+1) {
					return false
				}
			}
			return true
		}
		if root != nil {
			visit(root, 0)
		}
	}
}

// OfKind returns the nodes of the given kind under root, root included.
func OfKind(root *Node, kind NodeKind) []*Node {
	var found []*Node
	for n := range All(root) {
		if n.Kind == kind {
			found = append(found, n)
		}
	}
	return found
}
