package mark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/mark"
)

func TestWalkDocument_Order(t *testing.T) {
	t.Parallel()

	doc := mark.Parse("# A *b*\n\n- c\n")

	var kinds []mark.Kind
	mark.WalkDocument(doc, func(m mark.Mark) bool {
		kinds = append(kinds, m.Kind())
		return true
	})

	assert.Equal(t, []mark.Kind{
		mark.KindHeading, mark.KindPlainText, mark.KindEmphasis, mark.KindPlainText,
		mark.KindNewline, mark.KindNewline,
		mark.KindList, mark.KindListItem, mark.KindParagraph, mark.KindPlainText,
	}, kinds)
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	doc := mark.Parse("**a** b")

	visited := 0
	mark.WalkDocument(doc, func(m mark.Mark) bool {
		visited++
		return m.Kind() != mark.KindEmphasis
	})

	// Paragraph, Emphasis, PlainText " b".
	assert.Equal(t, 3, visited)
}

func TestWalk_TableChildren(t *testing.T) {
	t.Parallel()

	table := mark.Parse("|a|b|\n|-|-|\n|1|2|\n").Marks[0]

	children := mark.Children(table)
	require.Len(t, children, 3)
	assert.Equal(t, mark.KindTableRow, children[0].Kind())
	assert.Equal(t, mark.KindTableSeparator, children[1].Kind())
	assert.Len(t, mark.Children(children[2]), 2)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	doc := mark.Parse("para\n\n> quoted *text*\n")

	quote := doc.Marks[3]
	require.Equal(t, mark.KindBlockquote, quote.Kind())

	start, end, ok := mark.Span(quote)
	require.True(t, ok)
	assert.Equal(t, "3:1", start.String())
	assert.Equal(t, "3:16", end.String())
	assert.Equal(t, 6, start.Offset)

	_, _, ok = mark.Span(mark.Paragraph{})
	assert.False(t, ok)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	para := mark.Parse("[x](y)").Marks[0].(mark.Paragraph)

	var texts []string
	for _, tok := range mark.Tokens(para.Content[0]) {
		texts = append(texts, tok.String())
	}
	assert.Equal(t, []string{"[", "]", "(", "y", ")"}, texts)
}
