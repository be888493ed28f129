package parsec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

func TestFromString_Positions(t *testing.T) {
	t.Parallel()

	text := parsec.FromString("ab\ncé\n")
	require.Equal(t, 6, text.Len())

	want := []parsec.Position{
		{Offset: 0, Column: 0, Line: 0},
		{Offset: 1, Column: 1, Line: 0},
		{Offset: 2, Column: 2, Line: 0},
		{Offset: 3, Column: 0, Line: 1},
		{Offset: 4, Column: 1, Line: 1},
		{Offset: 5, Column: 2, Line: 1},
	}
	for i, pos := range want {
		assert.Equal(t, pos, text.At(i).Pos, "char %d", i)
	}
	assert.Equal(t, "ab\ncé\n", text.String())
}

func TestText_SplitPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		pattern  string
		wantOK   bool
		wantHead string
		wantRest string
	}{
		{name: "match", input: "**bold", pattern: "**", wantOK: true, wantHead: "**", wantRest: "bold"},
		{name: "mismatch", input: "*x", pattern: "**", wantOK: false, wantRest: "*x"},
		{name: "pattern longer than input", input: "*", pattern: "**", wantOK: false, wantRest: "*"},
		{name: "empty pattern", input: "abc", pattern: "", wantOK: true, wantHead: "", wantRest: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head, rest, ok := parsec.FromString(tt.input).SplitPrefix(tt.pattern)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHead, head.String())
			assert.Equal(t, tt.wantRest, rest.String())
		})
	}
}

func TestText_TakeClamps(t *testing.T) {
	t.Parallel()

	text := parsec.FromString("abc")

	head, rest := text.Take(10)
	assert.Equal(t, "abc", head.String())
	assert.True(t, rest.IsEmpty())

	head, rest = text.Take(-1)
	assert.True(t, head.IsEmpty())
	assert.Equal(t, "abc", rest.String())
}

func TestText_TakeDoesNotAlias(t *testing.T) {
	t.Parallel()

	text := parsec.FromString("abcdef")
	head, rest := text.Take(3)
	joined := head.Append(parsec.FromString("XYZ"))

	assert.Equal(t, "abcXYZ", joined.String())
	assert.Equal(t, "def", rest.String())
	assert.Equal(t, "abcdef", text.String())
}

func TestText_Lines(t *testing.T) {
	t.Parallel()

	lines := parsec.FromString("one\ntwo\n\nthree").Lines()
	got := make([]string, 0, len(lines))
	for _, line := range lines {
		got = append(got, line.String())
	}
	assert.Equal(t, []string{"one\n", "two\n", "\n", "three"}, got)
	assert.Empty(t, parsec.FromString("").Lines())
}

func TestText_TrimTrailing(t *testing.T) {
	t.Parallel()

	kept, trailing := parsec.FromString("text  \n\n").TrimTrailing(true)
	assert.Equal(t, "text", kept.String())
	assert.Equal(t, "  \n\n", trailing.String())

	kept, trailing = parsec.FromString("text  \n  ").TrimTrailing(false)
	assert.Equal(t, "text  \n", kept.String())
	assert.Equal(t, "  ", trailing.String())
}

func TestText_FromOffsetAcrossGaps(t *testing.T) {
	t.Parallel()

	source := parsec.FromString("> a\n> b\n")
	// Keep only the quoted content, as a blockquote would.
	content := source.Filter(func(c parsec.Char) bool {
		return c.Value != '>' && c.Value != ' '
	})
	require.Equal(t, "a\nb\n", content.String())

	rest, ok := content.FromOffset(6)
	require.True(t, ok)
	assert.Equal(t, "b\n", rest.String())

	_, ok = content.FromOffset(4)
	assert.False(t, ok, "offset of a filtered character must not be found")

	after, ok := source.After(3)
	require.True(t, ok)
	assert.Equal(t, "> b\n", after.String())
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a := parsec.FromString("ab")
	empty := parsec.Text{}

	assert.Equal(t, "ab", parsec.Concat(empty, a, empty).String())
	assert.True(t, parsec.Concat().IsEmpty())

	_, tail := parsec.FromString("xyz").Take(1)
	joined := parsec.Concat(a, tail)
	assert.Equal(t, "abyz", joined.String())
	assert.Equal(t, 4, joined.Len())
}
