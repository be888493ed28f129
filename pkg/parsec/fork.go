package parsec

// Fork runs extractor to carve a region out of the input, re-parses that
// region with sub, and resumes the outer stream where sub stopped.
//
// If sub consumed the whole region the outer stream resumes where extractor
// left it. Otherwise it resumes at the first character sub left behind,
// found by its original offset, so nothing the sub-parse skipped is lost.
func Fork[T, A any](extractor Parser[T], region func(T) Text, sub Parser[A]) Parser[Pair[T, A]] {
	return func(s State) Outcome[Pair[T, A]] {
		ext := extractor(s)
		if !ext.OK {
			return Reject[Pair[T, A]](s)
		}
		out := sub(s.WithText(region(ext.Value)))
		if !out.OK {
			return Reject[Pair[T, A]](s)
		}
		next := ext.Next
		if leftover := out.Next.text; !leftover.IsEmpty() {
			next = s.WithText(resumeAt(s.text, leftover, ext.Next.text))
		}
		return Advance(Pair[T, A]{First: ext.Value, Second: out.Value}, next)
	}
}

// Bounded runs sub on exactly the text extractor selects.
func Bounded[A any](extractor Parser[Text], sub Parser[A]) Parser[A] {
	return Map(Fork(extractor, func(t Text) Text { return t }, sub), func(p Pair[Text, A]) A {
		return p.Second
	})
}

// BoundedFork runs sub on region, a piece of the input the caller obtained
// without consuming it. The outer stream resumes after the last character
// of region that sub consumed.
func BoundedFork[A any](region Text, sub Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		out := sub(s.WithText(region))
		if !out.OK {
			return Reject[A](s)
		}
		if leftover := out.Next.text; !leftover.IsEmpty() {
			return Advance(out.Value, s.WithText(resumeAt(s.text, leftover, s.text)))
		}
		last, ok := region.Last()
		if !ok {
			return Advance(out.Value, s)
		}
		if rest, found := s.text.After(last.Pos.Offset); found {
			return Advance(out.Value, s.WithText(rest))
		}
		return Advance(out.Value, s)
	}
}

// resumeAt finds where the outer stream picks up after a sub-parse that
// left leftover unconsumed. When the leftover cannot be located in outer it
// is put back in front of fallback.
func resumeAt(outer, leftover, fallback Text) Text {
	first, _ := leftover.First()
	if rest, found := outer.FromOffset(first.Pos.Offset); found {
		return rest
	}
	return Concat(leftover, fallback)
}
