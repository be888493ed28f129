package mark

import (
	"slices"
	"strings"
)

// ScopeKind names a construct the parser is currently inside.
type ScopeKind uint8

const (
	// Block scopes.
	ScopeParagraph ScopeKind = iota + 1
	ScopeHeading
	ScopeBlockquote
	ScopeListItem
	ScopeTable

	// Inline scopes.
	ScopeEmphasis
	ScopeHighlight
	ScopeStrikethrough
	ScopeSubscript
	ScopeSuperscript
	ScopeInlineCode
	ScopeLinkText
	ScopeLinkDestination
	ScopeLatex
)

//nolint:gochecknoglobals // Read-only lookup table
var scopeNames = map[ScopeKind]string{
	ScopeParagraph:       "paragraph",
	ScopeHeading:         "heading",
	ScopeBlockquote:      "blockquote",
	ScopeListItem:        "list-item",
	ScopeTable:           "table",
	ScopeEmphasis:        "emphasis",
	ScopeHighlight:       "highlight",
	ScopeStrikethrough:   "strikethrough",
	ScopeSubscript:       "subscript",
	ScopeSuperscript:     "superscript",
	ScopeInlineCode:      "inline-code",
	ScopeLinkText:        "link-text",
	ScopeLinkDestination: "link-destination",
	ScopeLatex:           "latex",
}

func (k ScopeKind) String() string {
	if name, ok := scopeNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsBlock reports whether the scope is a block construct.
func (k ScopeKind) IsBlock() bool {
	return k >= ScopeParagraph && k <= ScopeTable
}

// Scope is one entry of the environment stack. Inline scopes carry the
// token that closes them; plain text inside the scope must stop there.
type Scope struct {
	Kind   ScopeKind
	Closer string
}

func (s Scope) String() string {
	if s.Closer == "" {
		return s.Kind.String()
	}
	return s.Kind.String() + "(" + s.Closer + ")"
}

// reservedTokens always end a plain-text run.
//
//nolint:gochecknoglobals // Read-only token set
var reservedTokens = []string{"[", "]", "(", ")", "*", "_", "=", "~", "`"}

// Environment is the stack of scopes enclosing the current parse position.
// It is an immutable value; the With methods return extended copies.
type Environment struct {
	scopes []Scope
}

// Root returns the empty environment.
func Root() Environment {
	return Environment{}
}

// With returns the environment with scope pushed on top.
func (e Environment) With(scope Scope) Environment {
	scopes := make([]Scope, len(e.scopes), len(e.scopes)+1)
	copy(scopes, e.scopes)
	return Environment{scopes: append(scopes, scope)}
}

// WithBlock pushes a block scope.
func (e Environment) WithBlock(kind ScopeKind) Environment {
	return e.With(Scope{Kind: kind})
}

// WithInline pushes an inline scope closed by closer.
func (e Environment) WithInline(kind ScopeKind, closer string) Environment {
	return e.With(Scope{Kind: kind, Closer: closer})
}

// Depth returns the number of scopes on the stack.
func (e Environment) Depth() int {
	return len(e.scopes)
}

// Has reports whether any scope of the given kind is active.
func (e Environment) Has(kind ScopeKind) bool {
	for _, s := range e.scopes {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// InnermostBlock returns the most recently pushed block scope.
func (e Environment) InnermostBlock() (Scope, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if e.scopes[i].Kind.IsBlock() {
			return e.scopes[i], true
		}
	}
	return Scope{}, false
}

// InnermostInline returns the most recently pushed inline scope.
func (e Environment) InnermostInline() (Scope, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if !e.scopes[i].Kind.IsBlock() {
			return e.scopes[i], true
		}
	}
	return Scope{}, false
}

// InlineTerminators returns the tokens a plain-text run must stop before:
// the reserved tokens plus the closer of the innermost inline scope.
func (e Environment) InlineTerminators() []string {
	terms := append([]string(nil), reservedTokens...)
	if inner, ok := e.InnermostInline(); ok && inner.Closer != "" {
		terms = append(terms, inner.Closer)
	}
	return terms
}

// Closers returns the closing tokens of every active inline scope,
// innermost first.
func (e Environment) Closers() []string {
	var closers []string
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if s := e.scopes[i]; !s.Kind.IsBlock() && s.Closer != "" {
			closers = append(closers, s.Closer)
		}
	}
	return closers
}

// inlineKey names everything the inline grammar reads from e: the innermost
// closer, the set of active closers and whether a paragraph is open.
// Environments with equal keys parse inline content identically.
func (e Environment) inlineKey() string {
	var b strings.Builder
	if inner, ok := e.InnermostInline(); ok {
		b.WriteString(inner.Closer)
	}
	closers := e.Closers()
	slices.Sort(closers)
	closers = slices.Compact(closers)
	b.WriteString("|")
	b.WriteString(strings.Join(closers, " "))
	if block, ok := e.InnermostBlock(); ok && block.Kind == ScopeParagraph {
		b.WriteString("|p")
	}
	return b.String()
}

func (e Environment) String() string {
	parts := make([]string, 0, len(e.scopes))
	for _, s := range e.scopes {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, " > ") + "]"
}
