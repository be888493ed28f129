package mark

import (
	"strings"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

type delimTrio = parsec.Triple[Token, []Inline, Token]

// inlineParser tries every inline construct in priority order. Nothing
// starts at the closer of the innermost inline scope, so that the enclosing
// construct can close.
//
// Outcomes are memoised per position. Without that, every unmatched opener
// in a run of [ or ~ is re-parsed by each alternative that follows it and
// the work doubles with each one.
func inlineParser(env Environment) parsec.Parser[Inline] {
	alternatives := parsec.Options(
		asInline(image(env)),
		asInline(link(env)),
		emphasis(env),
		asInline(delimited(env, ScopeHighlight, "==", func(d Delimited) Highlight { return Highlight{d} })),
		asInline(delimited(env, ScopeStrikethrough, "~~", func(d Delimited) Strikethrough { return Strikethrough{d} })),
		asInline(delimited(env, ScopeSubscript, "~", func(d Delimited) Subscript { return Subscript{d} })),
		asInline(delimited(env, ScopeSuperscript, "^", func(d Delimited) Superscript { return Superscript{d} })),
		asInline(inlineCode(env)),
		asInline(lineBreak(env)),
		asInline(plainText(env)),
		asInline(strayDelimiter(env)),
	)
	return parsec.Memoize("inline:"+env.inlineKey(), func(s parsec.State) parsec.Outcome[Inline] {
		if atCloser(env, s.Text()) {
			return parsec.Reject[Inline](s)
		}
		return alternatives(s)
	})
}

// inlines parses a run of inline nodes. The run never crosses a blank line.
func inlines(env Environment, allowEmpty bool) parsec.Parser[[]Inline] {
	return parsec.Lazy(func() parsec.Parser[[]Inline] {
		return parsec.Sequence(inlineParser(env), parsec.SequenceSettings{
			AllowEmpty: allowEmpty,
			Until:      parsec.Flip(parsec.Literal("\n\n")),
		})
	})
}

func asInline[T Inline](p parsec.Parser[T]) parsec.Parser[Inline] {
	return parsec.Map(p, func(v T) Inline { return v })
}

// atCloser reports whether t starts with the closer of the innermost inline
// scope. A closer that is immediately followed by another copy of its last
// character opens a longer run instead, as in the ** of *a **b** c*.
func atCloser(env Environment, t Token) bool {
	inner, ok := env.InnermostInline()
	if !ok || inner.Closer == "" {
		return false
	}
	_, rest, found := t.SplitPrefix(inner.Closer)
	if !found {
		return false
	}
	next, ok := rest.First()
	return !ok || !strings.HasSuffix(inner.Closer, string(next.Value))
}

func emphasis(env Environment) parsec.Parser[Inline] {
	markers := []string{"***", "**", "*", "___", "__", "_"}
	alternatives := make([]parsec.Parser[Inline], 0, len(markers))
	for _, marker := range markers {
		alternatives = append(alternatives, asInline(
			delimited(env, ScopeEmphasis, marker, func(d Delimited) Emphasis { return Emphasis{d} }),
		))
	}
	return parsec.Options(alternatives...)
}

// delimited parses marker, a non-empty inline run under a new scope closed
// by marker, and marker again.
func delimited[T Inline](env Environment, kind ScopeKind, marker string, build func(Delimited) T) parsec.Parser[T] {
	content := inlines(env.WithInline(kind, marker), false)
	return parsec.Map(parsec.BetweenBoth(parsec.Literal(marker), content), func(v delimTrio) T {
		return build(Delimited{Start: v.First, Content: v.Second, End: v.Third})
	})
}

func link(_ Environment) parsec.Parser[Link] {
	label := parsec.Between(
		parsec.Literal("["),
		inlines(Root().WithInline(ScopeLinkText, "]"), true),
		parsec.Literal("]"),
	)
	destination := parsec.TakeWhile(func(c parsec.Char) bool {
		return c.Value != ')' && !c.IsWhitespace()
	})
	title := parsec.Map(
		parsec.And(parsec.Spaces(), parsec.Between(
			parsec.Literal(`"`),
			parsec.TakeWhile(func(c parsec.Char) bool { return c.Value != '"' && !c.IsNewline() }),
			parsec.Literal(`"`),
		)),
		func(v parsec.Pair[Token, parsec.Triple[Token, Token, Token]]) *LinkTitle {
			return &LinkTitle{Space: v.First, Open: v.Second.First, Text: v.Second.Second, Close: v.Second.Third}
		},
	)
	target := parsec.And4(
		parsec.Literal("("),
		destination,
		parsec.MaybeOf(title),
		parsec.Literal(")"),
	)
	return parsec.Map(parsec.And(label, target),
		func(v parsec.Pair[delimTrio, parsec.Quad[Token, Token, parsec.Maybe[*LinkTitle], Token]]) Link {
			return Link{
				Text:        Bracketed[[]Inline]{Open: v.First.First, Content: v.First.Second, Close: v.First.Third},
				OpenParen:   v.Second.First,
				Destination: v.Second.Second,
				Title:       v.Second.Third.Value,
				CloseParen:  v.Second.Fourth,
			}
		})
}

func image(env Environment) parsec.Parser[Image] {
	return parsec.Map(parsec.And(parsec.Literal("!"), link(env)), func(v parsec.Pair[Token, Link]) Image {
		return Image{Bang: v.First, Link: v.Second}
	})
}

// inlineCode parses `code` or ``code``. The content is verbatim and may not
// run across a blank line.
func inlineCode(env Environment) parsec.Parser[InlineCode] {
	span := func(ticks string) parsec.Parser[InlineCode] {
		inner := env.WithInline(ScopeInlineCode, ticks)
		closer, _ := inner.InnermostInline()
		body := parsec.Consumed(parsec.SomeUntil(parsec.Pop(), parsec.Options(
			parsec.Literal(closer.Closer),
			parsec.Literal("\n\n"),
		)))
		return parsec.Map(parsec.Between(parsec.Literal(ticks), body, parsec.Literal(closer.Closer)),
			func(v parsec.Triple[Token, Token, Token]) InlineCode {
				return InlineCode{Start: v.First, Content: v.Second, End: v.Third}
			})
	}
	return parsec.Options(span("``"), span("`"))
}

// lineBreak accepts a newline inside a paragraph when the next line carries
// on with text rather than opening a block.
func lineBreak(env Environment) parsec.Parser[LineBreak] {
	block, ok := env.InnermostBlock()
	active := ok && block.Kind == ScopeParagraph
	end := parsec.Options(
		parsec.Void(blockOpener()),
		parsec.Void(parsec.Newline()),
		parsec.EOF(),
	)
	return parsec.Map(parsec.Consumed(parsec.Newline()).NotFollowedBy(end), func(t Token) LineBreak {
		return LineBreak{Newline: t}
	}).Deactivate(active)
}

// plainText consumes text up to the nearest terminator of env, a newline
// or the start of an image.
func plainText(env Environment) parsec.Parser[PlainText] {
	stop := startsWithAny(append(env.InlineTerminators(), "\n", "!["))
	return parsec.Map(parsec.Consumed(parsec.SomeUntil(parsec.Pop(), stop)), func(t Token) PlainText {
		return PlainText{Value: t}
	})
}

// strayDelimiter takes a single reserved character literally when no
// construct could start at it. It never swallows the closer of an enclosing
// inline scope.
func strayDelimiter(env Environment) parsec.Parser[PlainText] {
	closers := startsWithAny(env.Closers())
	reserved := parsec.SatisfyRune(func(r rune) bool {
		return strings.ContainsRune("[]()*_=~`^!", r)
	})
	return parsec.Map(parsec.Consumed(parsec.Then(notAt(closers), reserved)), func(t Token) PlainText {
		return PlainText{Value: t}
	})
}

// startsWithAny matches, without consuming, when the input starts with one
// of tokens.
func startsWithAny(tokens []string) parsec.Parser[struct{}] {
	return func(s parsec.State) parsec.Outcome[struct{}] {
		for _, tok := range tokens {
			if tok != "" && s.Text().HasPrefix(tok) {
				return parsec.Advance(struct{}{}, s)
			}
		}
		return parsec.Reject[struct{}](s)
	}
}

// notAt succeeds without consuming when m does not match.
func notAt(m parsec.Matcher) parsec.Parser[struct{}] {
	return parsec.Pure(struct{}{}).NotFollowedBy(m)
}
