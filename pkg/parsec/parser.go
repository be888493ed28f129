package parsec

// Parser consumes a prefix of a State and produces a value of type A.
type Parser[A any] func(State) Outcome[A]

// Matcher is anything that can be asked whether it would accept a state.
// Every Parser is a Matcher.
type Matcher interface {
	Matches(s State) bool
}

// Run applies the parser to s.
func (p Parser[A]) Run(s State) Outcome[A] {
	return p(s)
}

// Matches reports whether p accepts s, discarding the value.
func (p Parser[A]) Matches(s State) bool {
	return p(s).OK
}

// Evaluate runs p over source and returns its value and the unparsed rest.
func (p Parser[A]) Evaluate(source string) (A, Text, bool) {
	out := p(NewState(FromString(source)))
	return out.Value, out.Next.Text(), out.OK
}

// Or tries p and, if p rejects, q from the same state.
func (p Parser[A]) Or(q Parser[A]) Parser[A] {
	return Options(p, q)
}

// NotFollowedBy succeeds when p succeeds and m does not match the state p
// leaves behind. The lookahead consumes nothing.
func (p Parser[A]) NotFollowedBy(m Matcher) Parser[A] {
	return func(s State) Outcome[A] {
		out := p(s)
		if !out.OK || m.Matches(out.Next) {
			return Reject[A](s)
		}
		return out
	}
}

// FollowedBy succeeds when p succeeds and m matches the state p leaves
// behind. The lookahead consumes nothing.
func (p Parser[A]) FollowedBy(m Matcher) Parser[A] {
	return func(s State) Outcome[A] {
		out := p(s)
		if !out.OK || !m.Matches(out.Next) {
			return Reject[A](s)
		}
		return out
	}
}

// Deactivate turns p into a parser that always rejects when active is false.
func (p Parser[A]) Deactivate(active bool) Parser[A] {
	if active {
		return p
	}
	return Fail[A]()
}

// PutBack prefixes the input with text before running p.
func (p Parser[A]) PutBack(text Text) Parser[A] {
	return func(s State) Outcome[A] {
		return p(s.WithText(Concat(text, s.text)))
	}
}

// SpacedLeft skips optional non-newline whitespace before p.
func (p Parser[A]) SpacedLeft() Parser[A] {
	return Then(Spaces().Optional(), p)
}

// SpacedRight skips optional non-newline whitespace after p.
func (p Parser[A]) SpacedRight() Parser[A] {
	return Skip(p, Spaces().Optional())
}

// Spaced skips optional non-newline whitespace on both sides of p.
func (p Parser[A]) Spaced() Parser[A] {
	return p.SpacedLeft().SpacedRight()
}

// Optional turns rejection into success without consuming input. The value
// is the zero value in that case.
func (p Parser[A]) Optional() Parser[A] {
	return func(s State) Outcome[A] {
		out := p(s)
		if !out.OK {
			var zero A
			return Advance(zero, s)
		}
		return out
	}
}

// Lazy defers building a parser until it runs. Recursive grammars use it to
// refer to themselves.
func Lazy[A any](build func() Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		return build()(s)
	}
}
