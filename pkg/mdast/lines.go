package mdast

import (
	"sort"
	"unicode/utf8"
)

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineIndex converts byte offsets of a source into line/column positions.
type LineIndex struct {
	content []byte
	lines   []LineInfo
}

// NewLineIndex indexes content.
func NewLineIndex(content []byte) *LineIndex {
	return &LineIndex{content: content, lines: BuildLines(content)}
}

// LineCount returns the number of lines in the source.
func (x *LineIndex) LineCount() int {
	return len(x.lines)
}

// PositionAt converts a byte offset to a 1-based line and a 1-based column
// counted in characters. It returns the zero Position if the offset is out
// of range.
func (x *LineIndex) PositionAt(offset int) Position {
	if offset < 0 || offset > len(x.content) || len(x.lines) == 0 {
		return Position{}
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	lineInfo := x.lines[lineIdx]
	column := utf8.RuneCount(x.content[lineInfo.StartOffset:offset]) + 1

	return Position{Line: lineIdx + 1, Column: column}
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (x *LineIndex) LineContent(line int) []byte {
	if line < 1 || line > len(x.lines) {
		return nil
	}

	lineInfo := x.lines[line-1]
	return x.content[lineInfo.StartOffset:lineInfo.NewlineStart]
}
