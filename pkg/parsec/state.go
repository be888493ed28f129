package parsec

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdparsec/internal/logging"
)

// State is the input a parser runs on. It is a value; advancing a parser
// yields a new State and leaves the old one untouched.
type State struct {
	text   Text
	logger *log.Logger
	ctx    context.Context //nolint:containedctx // Carried through a single parse
	memo   *memoTable
}

// NewState wraps text in a State that reports through the default logger.
func NewState(text Text) State {
	return State{text: text}
}

// WithLogger returns a copy of the state that reports diagnostics to logger.
func (s State) WithLogger(logger *log.Logger) State {
	s.logger = logger
	return s
}

// Logger returns the logger diagnostics should go to.
func (s State) Logger() *log.Logger {
	if s.logger == nil {
		return logging.Default()
	}
	return s.logger
}

// Text returns the remaining input.
func (s State) Text() Text {
	return s.text
}

// WithText returns a state with the same settings and a different input.
func (s State) WithText(text Text) State {
	s.text = text
	return s
}

// AtEnd reports whether the input is exhausted.
func (s State) AtEnd() bool {
	return s.text.IsEmpty()
}

// Outcome is the result of running a parser. When OK is false the parser
// rejected its input, Value is the zero value and Next is the state the
// parser was given.
type Outcome[A any] struct {
	Value A
	Next  State
	OK    bool
}

// Advance builds a successful outcome.
func Advance[A any](value A, next State) Outcome[A] {
	return Outcome[A]{Value: value, Next: next, OK: true}
}

// Reject builds a failed outcome that leaves s unconsumed.
func Reject[A any](s State) Outcome[A] {
	return Outcome[A]{Next: s}
}
