package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdparsec/pkg/mdast"
)

func TestNewNode(t *testing.T) {
	t.Parallel()

	node := mdast.NewNode(mdast.NodeParagraph)
	if node.Kind != mdast.NodeParagraph {
		t.Errorf("expected kind Paragraph, got %s", node.Kind)
	}
	if node.Parent != nil || node.FirstChild != nil || node.LastChild != nil {
		t.Error("new node should have no relatives")
	}
	if node.Pos.IsValid() {
		t.Error("new node should have no position")
	}
}

func TestAppendChild(t *testing.T) {
	t.Parallel()

	parent := mdast.NewDocument()
	first := mdast.NewNode(mdast.NodeParagraph)
	second := mdast.NewNode(mdast.NodeHeading)

	mdast.AppendChild(parent, first)
	mdast.AppendChild(parent, second)

	if parent.FirstChild != first || parent.LastChild != second {
		t.Fatal("children not linked in order")
	}
	if first.Next != second || second.Prev != first {
		t.Error("siblings not linked")
	}
	if first.Parent != parent || second.Parent != parent {
		t.Error("parent pointers not set")
	}
	if parent.ChildCount() != 2 {
		t.Errorf("expected 2 children, got %d", parent.ChildCount())
	}
}

func TestAppendChild_MovesFromPreviousParent(t *testing.T) {
	t.Parallel()

	oldParent := mdast.NewNode(mdast.NodeBlockquote)
	newParent := mdast.NewNode(mdast.NodeListItem)
	child := mdast.NewText("moved")

	mdast.AppendChild(oldParent, child)
	mdast.AppendChild(newParent, child)

	if oldParent.HasChildren() {
		t.Error("child still attached to old parent")
	}
	if newParent.FirstChild != child || child.Parent != newParent {
		t.Error("child not attached to new parent")
	}
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	parent := mdast.NewDocument()
	a := mdast.NewText("a")
	b := mdast.NewText("b")
	c := mdast.NewText("c")
	mdast.AppendChild(parent, a)
	mdast.AppendChild(parent, b)
	mdast.AppendChild(parent, c)

	mdast.RemoveChild(parent, b)

	if a.Next != c || c.Prev != a {
		t.Error("siblings not relinked after removal")
	}
	if b.Parent != nil || b.Prev != nil || b.Next != nil {
		t.Error("removed node still linked")
	}

	mdast.RemoveChild(parent, b)
	if parent.ChildCount() != 2 {
		t.Errorf("removing a detached node changed the tree: %d children", parent.ChildCount())
	}
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	para := mdast.NewNode(mdast.NodeParagraph)
	strong := mdast.NewNode(mdast.NodeStrong)
	mdast.AppendChild(para, mdast.NewText("Hello "))
	mdast.AppendChild(para, strong)
	mdast.AppendChild(strong, mdast.NewText("world"))

	if got := para.Text(); got != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", got)
	}
}

func TestNode_SetExt(t *testing.T) {
	t.Parallel()

	node := mdast.NewNode(mdast.NodeText)
	node.SetExt("detected", true)

	if node.Ext["detected"] != true {
		t.Error("ext attribute not recorded")
	}
}

func TestNodeKind_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   mdast.NodeKind
		block  bool
		inline bool
		name   string
	}{
		{mdast.NodeDocument, true, false, "Document"},
		{mdast.NodeTableCell, true, false, "TableCell"},
		{mdast.NodeText, false, true, "Text"},
		{mdast.NodeSuperscript, false, true, "Superscript"},
		{mdast.NodeRaw, false, false, "Raw"},
	}

	for _, tt := range tests {
		node := &mdast.Node{Kind: tt.kind}
		if node.IsBlock() != tt.block {
			t.Errorf("%s: IsBlock() = %v", tt.name, node.IsBlock())
		}
		if node.IsInline() != tt.inline {
			t.Errorf("%s: IsInline() = %v", tt.name, node.IsInline())
		}
		if tt.kind.String() != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, tt.kind.String())
		}
	}
}
