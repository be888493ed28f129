package mark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/mdast"
)

func kinds(nodes []*mdast.Node) []mdast.NodeKind {
	out := make([]mdast.NodeKind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func TestLower_Emphasis(t *testing.T) {
	t.Parallel()

	root := mark.Lower(mark.Parse("Some **bold** and *it* ***both***\n"))

	require.Equal(t, 1, root.ChildCount())
	para := root.FirstChild
	assert.Equal(t, mdast.NodeParagraph, para.Kind)
	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeText, mdast.NodeStrong, mdast.NodeText,
		mdast.NodeEmphasis, mdast.NodeText, mdast.NodeEmphasis,
	}, kinds(para.Children()))

	both := para.LastChild
	require.Equal(t, 1, both.ChildCount())
	assert.Equal(t, mdast.NodeStrong, both.FirstChild.Kind)
	assert.Equal(t, 2, both.FirstChild.Inline.EmphasisLevel)
	assert.Equal(t, "both", both.Text())
	assert.Equal(t, "Some bold and it both", para.Text())
}

func TestLower_Positions(t *testing.T) {
	t.Parallel()

	root := mark.Lower(mark.Parse("# Title\n\ntext *x*\n"))

	children := root.Children()
	require.Len(t, children, 2)

	heading := children[0]
	assert.Equal(t, 1, heading.Block.HeadingLevel)
	assert.Equal(t, mdast.SourcePosition{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 8}, heading.Pos)

	emph := children[1].LastChild
	assert.Equal(t, mdast.NodeEmphasis, emph.Kind)
	assert.Equal(t, mdast.SourcePosition{StartLine: 3, StartColumn: 6, EndLine: 3, EndColumn: 9}, emph.Pos)
}

func TestLower_Lists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		attrs  mdast.ListAttrs
		items  int
	}{
		{
			name:   "bullet",
			source: "* a\n* b\n",
			attrs:  mdast.ListAttrs{BulletMarker: "*", Tight: true},
			items:  2,
		},
		{
			name:   "ordered",
			source: "3) a\n4) b\n",
			attrs:  mdast.ListAttrs{Ordered: true, StartNumber: 3, Delimiter: ")", Tight: true},
			items:  2,
		},
		{
			name:   "task",
			source: "- [ ] a\n",
			attrs:  mdast.ListAttrs{Task: true, BulletMarker: "-", Tight: true},
			items:  1,
		},
		{
			name:   "loose",
			source: "- a\n\n- b\n",
			attrs:  mdast.ListAttrs{BulletMarker: "-"},
			items:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := mark.Lower(mark.Parse(tt.source)).FirstChild
			require.Equal(t, mdast.NodeList, list.Kind)
			require.NotNil(t, list.Block)
			require.NotNil(t, list.Block.List)
			assert.Equal(t, tt.attrs, *list.Block.List)
			assert.Equal(t, tt.items, list.ChildCount())
		})
	}
}

func TestLower_TaskItem(t *testing.T) {
	t.Parallel()

	list := mark.Lower(mark.Parse("- [x] done\n")).FirstChild
	item := list.FirstChild

	require.NotNil(t, item.Block)
	require.NotNil(t, item.Block.Task)
	assert.True(t, item.Block.Task.Checked)
	assert.Equal(t, "done", item.Text())
}

func TestLower_CodeBlock(t *testing.T) {
	t.Parallel()

	code := mark.Lower(mark.Parse("```go\nfmt.Println()\n```\n")).FirstChild

	assert.Equal(t, mdast.NodeCodeBlock, code.Kind)
	assert.Equal(t, &mdast.CodeBlockAttrs{FenceChar: '`', FenceLength: 3, Info: "go", Language: "go"}, code.Block.CodeBlock)
	assert.Equal(t, "fmt.Println()", string(code.Inline.Text))
}

func TestLower_Table(t *testing.T) {
	t.Parallel()

	table := mark.Lower(mark.Parse("| a | b |\n|---|:-:|\n| 1 | |\n")).FirstChild

	require.Equal(t, mdast.NodeTable, table.Kind)
	assert.Equal(t, []string{"none", "center"}, table.Block.Table.Alignments)
	require.Equal(t, 2, table.ChildCount())

	header := table.FirstChild
	assert.Equal(t, []mdast.NodeKind{mdast.NodeTableCell, mdast.NodeTableCell}, kinds(header.Children()))
	assert.Equal(t, "a", header.FirstChild.Text())
	assert.False(t, table.LastChild.LastChild.HasChildren())
}

func TestLower_LinkAndInlines(t *testing.T) {
	t.Parallel()

	para := mark.Lower(mark.Parse(`[a](u "T") ![i](p) ==h== ~~s~~ ~b~ ^p^ `+"`c`")).FirstChild

	var got []mdast.NodeKind
	for _, n := range para.Children() {
		if n.Kind != mdast.NodeText {
			got = append(got, n.Kind)
		}
	}
	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeLink, mdast.NodeImage, mdast.NodeHighlight, mdast.NodeStrikethrough,
		mdast.NodeSubscript, mdast.NodeCodeSpan,
	}, got)

	link := para.FirstChild
	assert.Equal(t, &mdast.LinkAttrs{Destination: "u", Title: "T"}, link.Inline.Link)
}

func TestLower_DropsBlankLines(t *testing.T) {
	t.Parallel()

	root := mark.Lower(mark.Parse("\n\n---\n\n> q\n"))

	assert.Equal(t, []mdast.NodeKind{mdast.NodeThematicBreak, mdast.NodeBlockquote}, kinds(root.Children()))
	assert.Equal(t, []string{"ThematicBreak", "Blockquote", "  Paragraph"}, mdast.BlockOutline(root))
}
