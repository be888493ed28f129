// Package parsec is a small backtracking parser-combinator engine over an
// immutable, position-annotated character buffer.
//
// Parsers never mutate their input. A parser receives a State and either
// advances it, producing a value, or rejects it. Alternatives are tried from
// the same starting state, so backtracking is free.
package parsec

import (
	"fmt"
	"unicode"
)

// Position locates a character in the original input.
// All fields are zero-based. Offset counts runes, not bytes.
type Position struct {
	Offset int
	Column int
	Line   int
}

// Next returns the position of the character that follows a character r
// located at p.
func (p Position) Next(r rune) Position {
	if r == '\n' {
		return Position{Offset: p.Offset + 1, Column: 0, Line: p.Line + 1}
	}
	return Position{Offset: p.Offset + 1, Column: p.Column + 1, Line: p.Line}
}

// String formats the position as a 1-based "line:column" pair.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Char is a single rune annotated with where it came from.
type Char struct {
	Value rune
	Pos   Position
}

// IsNewline reports whether the character ends a line.
func (c Char) IsNewline() bool {
	return c.Value == '\n'
}

// IsWhitespace reports whether the character is any kind of whitespace,
// newlines included.
func (c Char) IsWhitespace() bool {
	return unicode.IsSpace(c.Value)
}

// IsSpace reports whether the character is whitespace other than a newline.
func (c Char) IsSpace() bool {
	return c.Value != '\n' && unicode.IsSpace(c.Value)
}

// IsDigit reports whether the character is an ASCII decimal digit.
func (c Char) IsDigit() bool {
	return c.Value >= '0' && c.Value <= '9'
}

func (c Char) String() string {
	return fmt.Sprintf("%q@%s", c.Value, c.Pos)
}
