package parsec

import "github.com/yaklabco/mdparsec/internal/logging"

// MaxStalledIterations bounds how many consecutive iterations a repetition
// may run without consuming input before it gives up.
const MaxStalledIterations = 1000

// ControlFlow is the verdict of a repetition terminator probe.
type ControlFlow uint8

const (
	// Noop lets the repetition continue.
	Noop ControlFlow = iota
	// Terminate stops the repetition before the next element.
	Terminate
)

func (f ControlFlow) String() string {
	if f == Terminate {
		return "terminate"
	}
	return "noop"
}

// Flip turns p into a probe that yields Terminate when p matches and Noop
// otherwise. The probe never consumes input and never rejects.
func Flip[A any](p Parser[A]) Parser[ControlFlow] {
	return func(s State) Outcome[ControlFlow] {
		if p(s).OK {
			return Advance(Terminate, s)
		}
		return Advance(Noop, s)
	}
}

// NoopFlow is a probe that never terminates.
func NoopFlow() Parser[ControlFlow] {
	return Pure(Noop)
}

// SequenceSettings configures Sequence.
type SequenceSettings struct {
	// AllowEmpty lets the repetition succeed with zero elements.
	AllowEmpty bool
	// Until is probed before every element. A Terminate verdict ends the
	// repetition. Nil means never.
	Until Parser[ControlFlow]
}

// WithAllowEmpty returns a copy of the settings with AllowEmpty set.
func (c SequenceSettings) WithAllowEmpty(allow bool) SequenceSettings {
	c.AllowEmpty = allow
	return c
}

// WithUntil returns a copy of the settings with the terminator probe set.
func (c SequenceSettings) WithUntil(until Parser[ControlFlow]) SequenceSettings {
	c.Until = until
	return c
}

// Sequence applies p repeatedly. It stops at the end of input, when the
// terminator probe says so, when p rejects, or after MaxStalledIterations
// consecutive iterations that consumed nothing. A stall is logged as a
// warning and the elements gathered so far are kept.
func Sequence[A any](p Parser[A], settings SequenceSettings) Parser[[]A] {
	return func(s State) Outcome[[]A] {
		var (
			values  []A
			current = s
			stalled = 0
		)
		for !current.AtEnd() {
			if settings.Until != nil {
				if flow := settings.Until(current); flow.OK && flow.Value == Terminate {
					break
				}
			}
			out := p(current)
			if !out.OK {
				break
			}
			values = append(values, out.Value)
			if out.Next.text.Len() < current.text.Len() {
				stalled = 0
			} else {
				stalled++
			}
			current = out.Next
			if stalled >= MaxStalledIterations {
				pos, _ := current.text.Start()
				current.Logger().Warn("repetition stopped without progress",
					logging.FieldIterations, stalled,
					logging.FieldPosition, pos.String())
				break
			}
		}
		if len(values) == 0 && !settings.AllowEmpty {
			return Reject[[]A](s)
		}
		return Advance(values, current)
	}
}

// Many matches p zero or more times.
func Many[A any](p Parser[A]) Parser[[]A] {
	return Sequence(p, SequenceSettings{AllowEmpty: true})
}

// Some matches p one or more times.
func Some[A any](p Parser[A]) Parser[[]A] {
	return Sequence(p, SequenceSettings{})
}

// ManyUntil matches p zero or more times, stopping before the first
// position where stop matches. stop is not consumed.
func ManyUntil[A, B any](p Parser[A], stop Parser[B]) Parser[[]A] {
	return Sequence(p, SequenceSettings{AllowEmpty: true, Until: Flip(stop)})
}

// SomeUntil is ManyUntil requiring at least one element.
func SomeUntil[A, B any](p Parser[A], stop Parser[B]) Parser[[]A] {
	return Sequence(p, SequenceSettings{Until: Flip(stop)})
}

// ManyTill matches p zero or more times up to end, which must then match
// and is consumed.
func ManyTill[A, B any](p Parser[A], end Parser[B]) Parser[Pair[[]A, B]] {
	return And(ManyUntil(p, end), end)
}

// SomeTill is ManyTill requiring at least one element.
func SomeTill[A, B any](p Parser[A], end Parser[B]) Parser[Pair[[]A, B]] {
	return And(SomeUntil(p, end), end)
}

// ManyUnless matches p zero or more times up to end, which is then consumed
// if it matches.
func ManyUnless[A, B any](p Parser[A], end Parser[B]) Parser[Pair[[]A, Maybe[B]]] {
	return And(ManyUntil(p, end), MaybeOf(end))
}

// SomeUnless is ManyUnless requiring at least one element.
func SomeUnless[A, B any](p Parser[A], end Parser[B]) Parser[Pair[[]A, Maybe[B]]] {
	return And(SomeUntil(p, end), MaybeOf(end))
}

// Chars gathers a run of characters into a Text.
func Chars(p Parser[[]Char]) Parser[Text] {
	return Map(p, FromChars)
}
