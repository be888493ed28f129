package parsec

// LineGroup is a run of consecutive lines that each opened with a line-start
// token, such as the lines of a blockquote.
type LineGroup struct {
	// Starts holds the line-start token of every line whose content is part
	// of the group.
	Starts []Text
	// Content is the concatenated rest of each line, newlines included,
	// with trailing whitespace removed.
	Content Text
}

// Lines groups consecutive lines that begin with lineStart. Grouping stops
// at the end of input, when terminator says so, when lineStart rejects or
// yields an empty token, or when the token's first non-blank character sits
// in a different column than on the first line.
//
// Trailing whitespace of the group, together with the line-start tokens of
// lines that only held whitespace, is left in the outer stream.
func Lines(lineStart Parser[Text], terminator Parser[ControlFlow]) Parser[LineGroup] {
	return func(s State) Outcome[LineGroup] {
		var (
			starts []Text
			pieces []Text
			guard  = -1
		)
		current := s
		for !current.AtEnd() {
			if terminator != nil {
				if flow := terminator(current); flow.OK && flow.Value == Terminate {
					break
				}
			}
			lead := lineStart(current)
			if !lead.OK || lead.Value.IsEmpty() {
				break
			}
			col := markerColumn(lead.Value)
			if guard < 0 {
				guard = col
			} else if col != guard {
				break
			}
			line, rest := splitLine(lead.Next.text)
			starts = append(starts, lead.Value)
			pieces = append(pieces, line)
			current = lead.Next.WithText(rest)
		}
		if len(starts) == 0 {
			return Reject[LineGroup](s)
		}

		content, trailing := Concat(pieces...).TrimTrailing(true)
		next := current
		if c, ok := trailing.First(); ok {
			if rest, found := s.text.FromOffset(c.Pos.Offset); found {
				next = s.WithText(rest)
				starts = startsBefore(starts, c.Pos.Offset)
			}
		}
		return Advance(LineGroup{Starts: starts, Content: content}, next)
	}
}

// IndentedBlock is a block of lines captured by WholeIndentedBlock.
type IndentedBlock struct {
	// Prefixes holds, for each line after the first, the indentation that
	// was stripped from it.
	Prefixes []Text
	// Content is the de-indented block with trailing whitespace removed.
	Content Text
}

// WholeIndentedBlock captures the rest of the current line plus every
// following line that is blank or indented to at least column. Up to column
// characters of leading whitespace are stripped from the continuation
// lines; the stripped text is kept in Prefixes. Trailing whitespace of the
// block is left in the outer stream.
func WholeIndentedBlock(column int) Parser[IndentedBlock] {
	return func(s State) Outcome[IndentedBlock] {
		first, rest := splitLine(s.text)
		pieces := []Text{first}
		var prefixes []Text
		for !rest.IsEmpty() {
			line, tail := splitLine(rest)
			lead, body := line.TakeWhile(func(c Char) bool {
				return c.IsSpace() && c.Pos.Column < column
			})
			if c, ok := body.First(); ok && !c.IsWhitespace() && c.Pos.Column < column {
				break
			}
			prefixes = append(prefixes, lead)
			pieces = append(pieces, body)
			rest = tail
		}

		content, trailing := Concat(pieces...).TrimTrailing(true)
		next := s.WithText(rest)
		if c, ok := trailing.First(); ok {
			if after, found := s.text.FromOffset(c.Pos.Offset); found {
				next = s.WithText(after)
			}
		}
		if breaks := countNewlines(content); breaks < len(prefixes) {
			prefixes = prefixes[:breaks]
		}
		return Advance(IndentedBlock{Prefixes: prefixes, Content: content}, next)
	}
}

// splitLine cuts t after its first newline, or at the end.
func splitLine(t Text) (Text, Text) {
	body, _, found := t.SplitAt(Char.IsNewline)
	if !found {
		return t, Text{}
	}
	return t.Take(body.Len() + 1)
}

func markerColumn(token Text) int {
	for _, c := range token.chars {
		if !c.IsSpace() {
			return c.Pos.Column
		}
	}
	first, _ := token.First()
	return first.Pos.Column
}

func startsBefore(starts []Text, offset int) []Text {
	for len(starts) > 1 {
		first, _ := starts[len(starts)-1].First()
		if first.Pos.Offset < offset {
			break
		}
		starts = starts[:len(starts)-1]
	}
	return starts
}

func countNewlines(t Text) int {
	n := 0
	for _, c := range t.chars {
		if c.IsNewline() {
			n++
		}
	}
	return n
}
