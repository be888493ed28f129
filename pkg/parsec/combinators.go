package parsec

// Pair, Triple and Quad hold the values of parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Maybe is the value of an optional parser.
type Maybe[A any] struct {
	Value A
	Valid bool
}

// Pure succeeds with v without consuming input.
func Pure[A any](v A) Parser[A] {
	return func(s State) Outcome[A] {
		return Advance(v, s)
	}
}

// Fail always rejects.
func Fail[A any]() Parser[A] {
	return func(s State) Outcome[A] {
		return Reject[A](s)
	}
}

// Bind runs p, builds the next parser from its value and runs that. If
// either step rejects, the whole parser rejects with the original state.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(s State) Outcome[B] {
		a := p(s)
		if !a.OK {
			return Reject[B](s)
		}
		b := f(a.Value)(a.Next)
		if !b.OK {
			return Reject[B](s)
		}
		return b
	}
}

// Map transforms the value of p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s State) Outcome[B] {
		a := p(s)
		if !a.OK {
			return Reject[B](s)
		}
		return Advance(f(a.Value), a.Next)
	}
}

// Replace discards the value of p in favour of v.
func Replace[A, B any](p Parser[A], v B) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Void discards the value of p.
func Void[A any](p Parser[A]) Parser[struct{}] {
	return Replace(p, struct{}{})
}

// Then runs p and q and keeps the value of q.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(s State) Outcome[B] {
		a := p(s)
		if !a.OK {
			return Reject[B](s)
		}
		b := q(a.Next)
		if !b.OK {
			return Reject[B](s)
		}
		return b
	}
}

// Skip runs p and q and keeps the value of p.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(s State) Outcome[A] {
		a := p(s)
		if !a.OK {
			return Reject[A](s)
		}
		b := q(a.Next)
		if !b.OK {
			return Reject[A](s)
		}
		return Advance(a.Value, b.Next)
	}
}

// Options tries each parser in order from the same state and returns the
// first success.
func Options[A any](ps ...Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		for _, p := range ps {
			if out := p(s); out.OK {
				return out
			}
		}
		return Reject[A](s)
	}
}

// MaybeOf never rejects: it reports whether p matched alongside its value.
func MaybeOf[A any](p Parser[A]) Parser[Maybe[A]] {
	return func(s State) Outcome[Maybe[A]] {
		out := p(s)
		if !out.OK {
			return Advance(Maybe[A]{}, s)
		}
		return Advance(Maybe[A]{Value: out.Value, Valid: true}, out.Next)
	}
}

// And runs p then q, keeping both values.
func And[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Bind(p, func(a A) Parser[Pair[A, B]] {
		return Map(q, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// And3 runs three parsers in sequence, keeping every value.
func And3[A, B, C any](p Parser[A], q Parser[B], r Parser[C]) Parser[Triple[A, B, C]] {
	return Map(And(And(p, q), r), func(v Pair[Pair[A, B], C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: v.First.First, Second: v.First.Second, Third: v.Second}
	})
}

// And4 runs four parsers in sequence, keeping every value.
func And4[A, B, C, D any](p Parser[A], q Parser[B], r Parser[C], t Parser[D]) Parser[Quad[A, B, C, D]] {
	return Map(And(And3(p, q, r), t), func(v Pair[Triple[A, B, C], D]) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{First: v.First.First, Second: v.First.Second, Third: v.First.Third, Fourth: v.Second}
	})
}

// Between runs leading, p and trailing, keeping all three values.
func Between[L, A, R any](leading Parser[L], p Parser[A], trailing Parser[R]) Parser[Triple[L, A, R]] {
	return And3(leading, p, trailing)
}

// BetweenBoth is Between with the same parser on both ends.
func BetweenBoth[D, A any](delimiter Parser[D], p Parser[A]) Parser[Triple[D, A, D]] {
	return And3(delimiter, p, delimiter)
}

// Consumed runs p and returns the text it consumed instead of its value.
// The consumed text is only meaningful when p reads its input in order,
// which every parser in this package does.
func Consumed[A any](p Parser[A]) Parser[Text] {
	return func(s State) Outcome[Text] {
		out := p(s)
		if !out.OK {
			return Reject[Text](s)
		}
		taken, _ := s.text.Take(s.text.Len() - out.Next.text.Len())
		return Advance(taken, out.Next)
	}
}
