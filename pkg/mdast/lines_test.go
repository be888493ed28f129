package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdparsec/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []mdast.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []mdast.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines := mdast.BuildLines([]byte(testCase.content))

			if len(lines) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d", len(testCase.expected), len(lines))
			}

			for i, exp := range testCase.expected {
				if lines[i] != exp {
					t.Errorf("line %d: expected %+v, got %+v", i, exp, lines[i])
				}
			}
		})
	}
}

func TestLineIndex_PositionAt(t *testing.T) {
	t.Parallel()

	index := mdast.NewLineIndex([]byte("héllo\nworld"))

	tests := []struct {
		name     string
		offset   int
		expected mdast.Position
	}{
		{"start", 0, mdast.Position{Line: 1, Column: 1}},
		{"after multibyte rune", 3, mdast.Position{Line: 1, Column: 3}},
		{"newline", 6, mdast.Position{Line: 1, Column: 6}},
		{"second line", 7, mdast.Position{Line: 2, Column: 1}},
		{"end of content", 12, mdast.Position{Line: 2, Column: 6}},
		{"negative", -1, mdast.Position{}},
		{"past end", 13, mdast.Position{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := index.PositionAt(testCase.offset); got != testCase.expected {
				t.Errorf("PositionAt(%d) = %+v, want %+v", testCase.offset, got, testCase.expected)
			}
		})
	}

	if index.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", index.LineCount())
	}
	if got := string(index.LineContent(2)); got != "world" {
		t.Errorf("LineContent(2) = %q", got)
	}
	if index.LineContent(3) != nil {
		t.Error("LineContent out of range should be nil")
	}
}
