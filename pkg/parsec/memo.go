package parsec

import "context"

// memoTable caches outcomes for one parse. Entries are keyed by parser name
// and by the exact view of the input the parser ran on.
type memoTable struct {
	entries map[memoKey]any
}

type memoKey struct {
	name   string
	start  *Char
	length int
}

// view identifies the characters of t. Two Texts with the same view hold the
// same characters because backing arrays are never written after a Text is
// cut from them.
func (t Text) view() (*Char, int) {
	if len(t.chars) == 0 {
		return nil, 0
	}
	return &t.chars[0], len(t.chars)
}

// WithMemo returns a copy of the state that caches the outcomes of Memoize
// parsers. Every state derived from it shares the same cache, so a cache
// should cover a single parse.
func (s State) WithMemo() State {
	s.memo = &memoTable{entries: make(map[memoKey]any)}
	return s
}

// WithContext returns a copy of the state whose Memoize parsers reject once
// ctx is done.
func (s State) WithContext(ctx context.Context) State {
	s.ctx = ctx
	return s
}

// Err returns the error of the state's context, if any.
func (s State) Err() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

// Memoize caches the outcome of p per input position under name.
//
// Outcomes are only cached on states prepared with WithMemo. name must
// capture everything p depends on besides the input: two parsers sharing a
// name must behave identically. A memoised parser rejects without running p
// once the state's context is done.
func Memoize[A any](name string, p Parser[A]) Parser[A] {
	return func(s State) Outcome[A] {
		if s.Err() != nil {
			return Reject[A](s)
		}
		if s.memo == nil {
			return p(s)
		}
		start, length := s.text.view()
		key := memoKey{name: name, start: start, length: length}
		if cached, ok := s.memo.entries[key]; ok {
			out, _ := cached.(Outcome[A])
			return out
		}
		out := p(s)
		s.memo.entries[key] = out
		return out
	}
}
