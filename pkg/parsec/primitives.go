package parsec

// Pop consumes any single character.
func Pop() Parser[Char] {
	return func(s State) Outcome[Char] {
		c, rest, ok := s.text.Uncons()
		if !ok {
			return Reject[Char](s)
		}
		return Advance(c, s.WithText(rest))
	}
}

// Satisfy consumes a single character accepted by pred.
func Satisfy(pred func(Char) bool) Parser[Char] {
	return func(s State) Outcome[Char] {
		c, rest, ok := s.text.Uncons()
		if !ok || !pred(c) {
			return Reject[Char](s)
		}
		return Advance(c, s.WithText(rest))
	}
}

// SatisfyRune consumes a single character whose rune is accepted by pred.
func SatisfyRune(pred func(rune) bool) Parser[Char] {
	return Satisfy(func(c Char) bool { return pred(c.Value) })
}

// Rune consumes exactly r.
func Rune(r rune) Parser[Char] {
	return SatisfyRune(func(v rune) bool { return v == r })
}

// OneOf consumes any single rune contained in set.
func OneOf(set string) Parser[Char] {
	return SatisfyRune(func(v rune) bool {
		for _, r := range set {
			if r == v {
				return true
			}
		}
		return false
	})
}

// NoneOf consumes any single rune not contained in set.
func NoneOf(set string) Parser[Char] {
	return SatisfyRune(func(v rune) bool {
		for _, r := range set {
			if r == v {
				return false
			}
		}
		return true
	})
}

// Literal consumes the exact string pattern. An empty pattern always
// succeeds without consuming.
func Literal(pattern string) Parser[Text] {
	return func(s State) Outcome[Text] {
		head, rest, ok := s.text.SplitPrefix(pattern)
		if !ok {
			return Reject[Text](s)
		}
		return Advance(head, s.WithText(rest))
	}
}

// Newline consumes a single newline.
func Newline() Parser[Char] {
	return Satisfy(Char.IsNewline)
}

// Space consumes one whitespace character that is not a newline.
func Space() Parser[Char] {
	return Satisfy(Char.IsSpace)
}

// Digit consumes one ASCII digit.
func Digit() Parser[Char] {
	return Satisfy(Char.IsDigit)
}

// Spaces consumes one or more whitespace characters other than newlines.
func Spaces() Parser[Text] {
	return TakeWhile1(Char.IsSpace)
}

// AnyWhitespace consumes one or more whitespace characters, newlines
// included.
func AnyWhitespace() Parser[Text] {
	return TakeWhile1(Char.IsWhitespace)
}

// Digits consumes one or more ASCII digits.
func Digits() Parser[Text] {
	return TakeWhile1(Char.IsDigit)
}

// RestOfLine consumes one or more characters up to, not including, the next
// newline or the end of input.
func RestOfLine() Parser[Text] {
	return TakeWhile1(func(c Char) bool { return !c.IsNewline() })
}

// TakeWhile consumes the longest run of characters accepted by pred. It
// never rejects.
func TakeWhile(pred func(Char) bool) Parser[Text] {
	return func(s State) Outcome[Text] {
		head, rest := s.text.TakeWhile(pred)
		return Advance(head, s.WithText(rest))
	}
}

// TakeWhile1 is TakeWhile that rejects when nothing matched.
func TakeWhile1(pred func(Char) bool) Parser[Text] {
	return func(s State) Outcome[Text] {
		head, rest := s.text.TakeWhile(pred)
		if head.IsEmpty() {
			return Reject[Text](s)
		}
		return Advance(head, s.WithText(rest))
	}
}

// EOF succeeds only at the end of input.
func EOF() Parser[struct{}] {
	return func(s State) Outcome[struct{}] {
		if !s.AtEnd() {
			return Reject[struct{}](s)
		}
		return Advance(struct{}{}, s)
	}
}

// Column succeeds without consuming when the next character sits at
// column col.
func Column(col int) Parser[struct{}] {
	return func(s State) Outcome[struct{}] {
		c, ok := s.text.First()
		if !ok || c.Pos.Column != col {
			return Reject[struct{}](s)
		}
		return Advance(struct{}{}, s)
	}
}
