package parsec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

func quoteStart() parsec.Parser[parsec.Text] {
	return parsec.Consumed(parsec.And3(
		parsec.Spaces().Optional(),
		parsec.Literal(">"),
		parsec.Space().Optional(),
	))
}

func TestLines_GroupsQuotedLines(t *testing.T) {
	t.Parallel()

	group, rest, ok := parsec.Lines(quoteStart(), nil).Evaluate("> one\n> two\nafter")
	require.True(t, ok)
	require.Len(t, group.Starts, 2)
	assert.Equal(t, "> ", group.Starts[0].String())
	assert.Equal(t, "one\ntwo", group.Content.String())
	assert.Equal(t, "\nafter", rest.String(), "trailing newline stays outside")
}

func TestLines_ColumnGuard(t *testing.T) {
	t.Parallel()

	group, rest, ok := parsec.Lines(quoteStart(), nil).Evaluate("> one\n  > two\n")
	require.True(t, ok)
	assert.Len(t, group.Starts, 1)
	assert.Equal(t, "one", group.Content.String())
	assert.Equal(t, "\n  > two\n", rest.String())
}

func TestLines_NonLazy(t *testing.T) {
	t.Parallel()

	group, rest, ok := parsec.Lines(quoteStart(), nil).Evaluate("> one\ncontinued")
	require.True(t, ok)
	assert.Equal(t, "one", group.Content.String())
	assert.Equal(t, "\ncontinued", rest.String())
}

func TestLines_BlankQuotedLineAtEndIsLeftOutside(t *testing.T) {
	t.Parallel()

	group, rest, ok := parsec.Lines(quoteStart(), nil).Evaluate("> a\n>\n")
	require.True(t, ok)
	assert.Len(t, group.Starts, 1)
	assert.Equal(t, "a", group.Content.String())
	assert.Equal(t, "\n>\n", rest.String())
}

func TestLines_RejectsWithoutFirstLine(t *testing.T) {
	t.Parallel()

	_, rest, ok := parsec.Lines(quoteStart(), nil).Evaluate("plain")
	assert.False(t, ok)
	assert.Equal(t, "plain", rest.String())
}

func TestWholeIndentedBlock(t *testing.T) {
	t.Parallel()

	source := "- Outer\n    - Nested\n\n  more\n- Back"
	state := parsec.NewState(parsec.FromString(source))
	_, afterMarker := state.Text().Take(2)

	out := parsec.WholeIndentedBlock(2).Run(state.WithText(afterMarker))
	require.True(t, out.OK)

	block := out.Value
	assert.Equal(t, "Outer\n  - Nested\n\nmore", block.Content.String())
	require.Len(t, block.Prefixes, 3)
	assert.Equal(t, "  ", block.Prefixes[0].String())
	assert.Equal(t, "", block.Prefixes[1].String())
	assert.Equal(t, "  ", block.Prefixes[2].String())
	assert.Equal(t, "\n- Back", out.Next.Text().String())
}

func TestWholeIndentedBlock_TrailingBlankLinesStayOutside(t *testing.T) {
	t.Parallel()

	out := parsec.WholeIndentedBlock(0).Run(parsec.NewState(parsec.FromString("item\n\n\n")))
	require.True(t, out.OK)
	assert.Equal(t, "item", out.Value.Content.String())
	assert.Empty(t, out.Value.Prefixes)
	assert.Equal(t, "\n\n\n", out.Next.Text().String())
}
