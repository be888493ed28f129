package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/mdast"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

func TestNewDiff_Equal(t *testing.T) {
	t.Parallel()

	assert.Nil(t, verify.NewDiff("doc.md", "same\n", "same\n"))

	var diff *verify.Diff
	assert.False(t, diff.HasChanges())
	assert.Empty(t, diff.Location())
}

func TestNewDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		original      string
		modified      string
		wantLine      int
		wantColumn    int
		wantAdditions int
		wantDeletions int
	}{
		{
			name:          "changed line",
			original:      "a\nb\nc\n",
			modified:      "a\nB\nc\n",
			wantLine:      2,
			wantColumn:    1,
			wantAdditions: 1,
			wantDeletions: 1,
		},
		{
			name:          "change inside a line",
			original:      "* item\n",
			modified:      "- item\n",
			wantLine:      1,
			wantColumn:    1,
			wantAdditions: 1,
			wantDeletions: 1,
		},
		{
			name:          "appended line",
			original:      "a\n",
			modified:      "a\nb\n",
			wantLine:      2,
			wantColumn:    1,
			wantAdditions: 1,
		},
		{
			name:          "removed rule line",
			original:      "text\n---\n",
			modified:      "text\n",
			wantLine:      2,
			wantColumn:    1,
			wantDeletions: 1,
		},
		{
			name:          "heading space",
			original:      "#Title\n",
			modified:      "# Title\n",
			wantLine:      1,
			wantColumn:    2,
			wantAdditions: 1,
			wantDeletions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diff := verify.NewDiff("/docs/doc.md", tt.original, tt.modified)
			require.NotNil(t, diff)
			assert.True(t, diff.HasChanges())
			assert.Equal(t, tt.wantLine, diff.Line)
			assert.Equal(t, tt.wantColumn, diff.Column)
			assert.Equal(t, tt.wantAdditions, diff.Additions)
			assert.Equal(t, tt.wantDeletions, diff.Deletions)
			assert.Contains(t, diff.Unified, "--- a/docs/doc.md")
			assert.Contains(t, diff.Unified, "+++ b/docs/doc.md")
			assert.Contains(t, diff.Unified, "@@")
		})
	}
}

func TestCompareOutlines(t *testing.T) {
	t.Parallel()

	want := []string{"Heading level=1", "Paragraph", "List bullet items=1", "  ListItem", "    Paragraph"}

	assert.Empty(t, verify.CompareOutlines(want, want))

	got := []string{"Heading level=1", "Paragraph", "Paragraph"}
	mismatches := verify.CompareOutlines(want, got)
	require.Len(t, mismatches, 1)
	assert.Equal(t, 3, mismatches[0].Line)
	assert.Equal(t, want[2:], mismatches[0].Want)
	assert.Equal(t, []string{"Paragraph"}, mismatches[0].Got)
	assert.Equal(t,
		`outline line 3: reference "List bullet items=1", "ListItem", "Paragraph", mdparsec "Paragraph"`,
		mismatches[0].String())
}

func TestCompareOutlines_Insertion(t *testing.T) {
	t.Parallel()

	mismatches := verify.CompareOutlines([]string{"Paragraph"}, []string{"Paragraph", "ThematicBreak"})
	require.Len(t, mismatches, 1)
	assert.Empty(t, mismatches[0].Want)
	assert.Contains(t, mismatches[0].String(), "reference (nothing)")
}

func TestCompareTrees_SourceLine(t *testing.T) {
	t.Parallel()

	block := func(kind mdast.NodeKind, line int) *mdast.Node {
		n := mdast.NewNode(kind)
		n.Pos = mdast.Span(mdast.Position{Line: line, Column: 1}, mdast.Position{Line: line, Column: 2})
		return n
	}

	want := mdast.NewDocument()
	mdast.AppendChild(want, block(mdast.NodeParagraph, 1))
	mdast.AppendChild(want, block(mdast.NodeThematicBreak, 3))

	got := mdast.NewDocument()
	mdast.AppendChild(got, block(mdast.NodeParagraph, 1))
	mdast.AppendChild(got, block(mdast.NodeParagraph, 3))

	mismatches := verify.CompareTrees(want, got)
	require.Len(t, mismatches, 1)
	assert.Equal(t, 2, mismatches[0].Line)
	assert.Equal(t, 3, mismatches[0].SourceLine)

	extra := mdast.NewDocument()
	mdast.AppendChild(extra, block(mdast.NodeParagraph, 1))
	mdast.AppendChild(extra, block(mdast.NodeThematicBreak, 3))
	mdast.AppendChild(extra, block(mdast.NodeParagraph, 5))

	mismatches = verify.CompareTrees(want, extra)
	require.Len(t, mismatches, 1)
	assert.Empty(t, mismatches[0].Want)
	assert.Equal(t, 5, mismatches[0].SourceLine, "insertions take the line from mdparsec's tree")
}
