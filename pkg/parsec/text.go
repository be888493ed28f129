package parsec

import (
	"sort"
	"strings"
)

// Text is an immutable view over a run of positioned characters.
//
// Sub-views share the backing array with the Text they were cut from.
// No operation writes into a backing array that another Text can see, so
// a Text can be passed around and split freely.
//
// Along any Text produced by this package, character offsets strictly
// increase. Texts assembled from non-contiguous pieces (for example a
// de-indented block) keep that property, which is what IndexOfOffset
// relies on.
type Text struct {
	chars []Char
}

// FromString converts a string into a Text starting at offset, line and
// column zero.
func FromString(s string) Text {
	chars := make([]Char, 0, len(s))
	var pos Position
	for _, r := range s {
		chars = append(chars, Char{Value: r, Pos: pos})
		pos = pos.Next(r)
	}
	return Text{chars: chars}
}

// FromChars builds a Text from already positioned characters.
// The slice is copied.
func FromChars(chars []Char) Text {
	if len(chars) == 0 {
		return Text{}
	}
	return Text{chars: append([]Char(nil), chars...)}
}

// Len returns the number of characters in the view.
func (t Text) Len() int {
	return len(t.chars)
}

// IsEmpty reports whether the view holds no characters.
func (t Text) IsEmpty() bool {
	return len(t.chars) == 0
}

// At returns the i-th character. It panics if i is out of range.
func (t Text) At(i int) Char {
	return t.chars[i]
}

// Chars returns a copy of the characters in the view.
func (t Text) Chars() []Char {
	return append([]Char(nil), t.chars...)
}

// First returns the first character.
func (t Text) First() (Char, bool) {
	if len(t.chars) == 0 {
		return Char{}, false
	}
	return t.chars[0], true
}

// Last returns the last character.
func (t Text) Last() (Char, bool) {
	if len(t.chars) == 0 {
		return Char{}, false
	}
	return t.chars[len(t.chars)-1], true
}

// Uncons splits off the first character.
func (t Text) Uncons() (Char, Text, bool) {
	if len(t.chars) == 0 {
		return Char{}, t, false
	}
	return t.chars[0], Text{chars: t.chars[1:]}, true
}

// Take splits the view after n characters. n is clamped to [0, Len].
func (t Text) Take(n int) (Text, Text) {
	n = max(0, min(n, len(t.chars)))
	return Text{chars: t.chars[:n:n]}, Text{chars: t.chars[n:]}
}

// HasPrefix reports whether the view starts with pattern.
func (t Text) HasPrefix(pattern string) bool {
	_, _, ok := t.SplitPrefix(pattern)
	return ok
}

// SplitPrefix returns the characters matching pattern and the remainder.
// An empty pattern always matches.
func (t Text) SplitPrefix(pattern string) (Text, Text, bool) {
	i := 0
	for _, r := range pattern {
		if i >= len(t.chars) || t.chars[i].Value != r {
			return Text{}, t, false
		}
		i++
	}
	head, rest := t.Take(i)
	return head, rest, true
}

// SplitAt splits the view before the first character satisfying pred.
// It reports false when no character does.
func (t Text) SplitAt(pred func(Char) bool) (Text, Text, bool) {
	for i, c := range t.chars {
		if pred(c) {
			head, rest := t.Take(i)
			return head, rest, true
		}
	}
	return t, Text{}, false
}

// TakeWhile splits the view before the first character not satisfying pred.
func (t Text) TakeWhile(pred func(Char) bool) (Text, Text) {
	head, rest, _ := t.SplitAt(func(c Char) bool { return !pred(c) })
	return head, rest
}

// TrimTrailing splits trailing whitespace off the view. Newlines count as
// whitespace only when includeNewlines is set.
func (t Text) TrimTrailing(includeNewlines bool) (Text, Text) {
	end := len(t.chars)
	for end > 0 {
		c := t.chars[end-1]
		if !c.IsSpace() && !(includeNewlines && c.IsNewline()) {
			break
		}
		end--
	}
	return t.Take(end)
}

// Filter returns a new Text holding the characters satisfying keep.
func (t Text) Filter(keep func(Char) bool) Text {
	var out []Char
	for _, c := range t.chars {
		if keep(c) {
			out = append(out, c)
		}
	}
	return Text{chars: out}
}

// Lines splits the view into lines. Every line but possibly the last keeps
// its newline. An empty view has no lines.
func (t Text) Lines() []Text {
	var lines []Text
	rest := t
	for !rest.IsEmpty() {
		line, tail, found := rest.SplitAt(Char.IsNewline)
		if !found {
			lines = append(lines, line)
			break
		}
		line, tail = rest.Take(line.Len() + 1)
		lines = append(lines, line)
		rest = tail
	}
	return lines
}

// Append returns the concatenation of t and others.
func (t Text) Append(others ...Text) Text {
	return Concat(append([]Text{t}, others...)...)
}

// Concat joins segments into a single Text. The result owns a fresh backing
// array unless only one segment is non-empty.
func Concat(segments ...Text) Text {
	total := 0
	nonEmpty := 0
	var only Text
	for _, seg := range segments {
		if !seg.IsEmpty() {
			total += seg.Len()
			nonEmpty++
			only = seg
		}
	}
	switch nonEmpty {
	case 0:
		return Text{}
	case 1:
		return only
	}
	chars := make([]Char, 0, total)
	for _, seg := range segments {
		chars = append(chars, seg.chars...)
	}
	return Text{chars: chars}
}

// IndexOfOffset finds the index of the character whose original offset is
// offset, using binary search.
func (t Text) IndexOfOffset(offset int) (int, bool) {
	i := sort.Search(len(t.chars), func(i int) bool {
		return t.chars[i].Pos.Offset >= offset
	})
	if i < len(t.chars) && t.chars[i].Pos.Offset == offset {
		return i, true
	}
	return 0, false
}

// FromOffset returns the suffix of the view that starts at the character
// with the given original offset.
func (t Text) FromOffset(offset int) (Text, bool) {
	i, ok := t.IndexOfOffset(offset)
	if !ok {
		return Text{}, false
	}
	_, rest := t.Take(i)
	return rest, true
}

// After returns the suffix of the view that follows the character with the
// given original offset.
func (t Text) After(offset int) (Text, bool) {
	i, ok := t.IndexOfOffset(offset)
	if !ok {
		return Text{}, false
	}
	_, rest := t.Take(i + 1)
	return rest, true
}

// Start returns the position of the first character.
func (t Text) Start() (Position, bool) {
	c, ok := t.First()
	return c.Pos, ok
}

// String returns the characters of the view as a string.
func (t Text) String() string {
	var b strings.Builder
	b.Grow(len(t.chars))
	for _, c := range t.chars {
		b.WriteRune(c.Value)
	}
	return b.String()
}
