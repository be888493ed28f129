package prettytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/prettytree"
)

func TestFromDocument(t *testing.T) {
	t.Parallel()

	tree := prettytree.FromDocument(mark.Parse("# Hi\n"))

	assert.Equal(t, "Document", tree.Label)
	require.Len(t, tree.Children, 2)

	heading := tree.Children[0]
	assert.Equal(t, "Heading(1)", heading.Label)
	assert.Equal(t, "1:1-1:5", heading.Span)
	require.Len(t, heading.Children, 1)
	assert.Equal(t, "PlainText", heading.Children[0].Label)
	assert.Equal(t, "Hi", heading.Children[0].Value)
	assert.True(t, heading.Children[0].HasValue)

	assert.Equal(t, "Newline", tree.Children[1].Label)
}

func TestToTree_Labels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		label  string
	}{
		{name: "strong", source: "**a**", label: "Paragraph"},
		{name: "ordered list", source: "1. a\n", label: "List(ordered)"},
		{name: "task list", source: "- [x] a\n", label: "List(task)"},
		{name: "code block", source: "```go\nx\n```", label: "FencedCodeBlock(go)"},
		{name: "rule", source: "---\n", label: "HorizontalRule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mark.Parse(tt.source)
			require.NotEmpty(t, doc.Marks)
			assert.Equal(t, tt.label, prettytree.ToTree(doc.Marks[0]).Label)
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tree := prettytree.FromDocument(mark.Parse("*a* b\n"))
	out := prettytree.Render(tree, prettytree.Options{Styles: prettytree.PlainStyles(), ShowSpans: true})

	assert.Contains(t, out, "Document")
	assert.Contains(t, out, "Emphasis(*)")
	assert.Contains(t, out, `PlainText " b"`)
	assert.Contains(t, out, "@1:1-1:4")
}

func TestRender_ValueWidth(t *testing.T) {
	t.Parallel()

	tree := &prettytree.Tree{Label: "PlainText", Value: "abcdefghij", HasValue: true}
	out := prettytree.Render(tree, prettytree.Options{Styles: prettytree.PlainStyles(), ValueWidth: 6})

	assert.Contains(t, out, `"abcd…`)
	assert.NotContains(t, out, "abcdefghij")
}
