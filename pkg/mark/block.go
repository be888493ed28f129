package mark

import "github.com/yaklabco/mdparsec/pkg/parsec"

// blockParser tries every block construct in priority order.
func blockParser(env Environment) parsec.Parser[Block] {
	return parsec.Options(
		asBlock(newlineBlock()),
		asBlock(heading(env)),
		asBlock(fencedCodeBlock()),
		asBlock(horizontalRule()),
		asBlock(blockquote(env)),
		asBlock(list(env)),
		asBlock(table()),
		asBlock(paragraph(env)),
	)
}

// markParser accepts a block or, failing that, an inline node.
func markParser(env Environment) parsec.Parser[Mark] {
	return parsec.Options(
		parsec.Map(blockParser(env), func(b Block) Mark { return b }),
		parsec.Map(inlineParser(env), func(i Inline) Mark { return i }),
	)
}

// marks parses a possibly empty run of nodes: a whole nested document.
func marks(env Environment) parsec.Parser[[]Mark] {
	return parsec.Lazy(func() parsec.Parser[[]Mark] {
		return parsec.Many(markParser(env))
	})
}

func asBlock[T Block](p parsec.Parser[T]) parsec.Parser[Block] {
	return parsec.Map(p, func(v T) Block { return v })
}

func newlineBlock() parsec.Parser[Newline] {
	return parsec.Map(parsec.Consumed(parsec.Newline()), func(t Token) Newline {
		return Newline{Value: t}
	})
}

func headingHashes() parsec.Parser[Token] {
	return parsec.Options(
		parsec.Literal("######"),
		parsec.Literal("#####"),
		parsec.Literal("####"),
		parsec.Literal("###"),
		parsec.Literal("##"),
		parsec.Literal("#"),
	)
}

func heading(env Environment) parsec.Parser[Heading] {
	content := inlines(env.WithBlock(ScopeHeading), true)
	return parsec.Map(parsec.And3(headingHashes(), parsec.Spaces().Optional(), content),
		func(v parsec.Triple[Token, Token, []Inline]) Heading {
			return Heading{Hashes: v.First, Spacing: v.Second, Content: v.Third}
		})
}

// fencedCodeBlock parses ```info ... ```. The closing fence may appear
// anywhere after the info line.
func fencedCodeBlock() parsec.Parser[FencedCodeBlock] {
	fence := parsec.Literal("```")
	info := parsec.TakeWhile(func(c parsec.Char) bool { return !c.IsNewline() })
	body := parsec.Consumed(parsec.ManyUntil(parsec.Pop(), fence))
	return parsec.Map(parsec.And4(fence, info, body, fence),
		func(v parsec.Quad[Token, Token, Token, Token]) FencedCodeBlock {
			return FencedCodeBlock{Open: v.First, Info: v.Second, Content: v.Third, Close: v.Fourth}
		})
}

func ruleRun(r rune) parsec.Parser[Token] {
	marker := string([]rune{r, r, r})
	return parsec.Consumed(parsec.And(parsec.Literal(marker), parsec.TakeWhile(func(c parsec.Char) bool {
		return c.Value == r
	})))
}

// horizontalRule parses ***, --- or ___ (three or more) alone on a line.
func horizontalRule() parsec.Parser[HorizontalRule] {
	lineEnd := parsec.Options(parsec.Void(parsec.Newline()), parsec.EOF())
	rule := parsec.Options(ruleRun('*'), ruleRun('-'), ruleRun('_'))
	trailing := parsec.TakeWhile(parsec.Char.IsSpace).FollowedBy(lineEnd)
	return parsec.Map(parsec.And(rule, trailing), func(v parsec.Pair[Token, Token]) HorizontalRule {
		return HorizontalRule{Rule: v.First, Trailing: v.Second}
	})
}

func quoteMarker() parsec.Parser[Token] {
	return parsec.Consumed(parsec.And3(
		parsec.Spaces().Optional(),
		parsec.Literal(">"),
		parsec.Space().Optional(),
	))
}

// blockquote groups the consecutive > lines that share a column and parses
// what follows the markers as a nested document. Lines without a marker end
// the quote.
func blockquote(env Environment) parsec.Parser[Blockquote] {
	group := parsec.Lines(quoteMarker(), parsec.Flip(parsec.Literal("\n\n")))
	content := func(g parsec.LineGroup) Token { return g.Content }
	return parsec.Map(parsec.Fork(group, content, marks(env.WithBlock(ScopeBlockquote))),
		func(v parsec.Pair[parsec.LineGroup, []Mark]) Blockquote {
			markers := v.First.Starts
			markers = markers[:min(len(markers), usedLines(stringifyAll(v.Second)))]
			return Blockquote{Markers: markers, Content: v.Second}
		})
}

// paragraph takes everything up to the next blank line and parses it as
// inline content. Whatever the inline parse leaves is handed back to the
// enclosing document.
func paragraph(env Environment) parsec.Parser[Paragraph] {
	chunk := parsec.Consumed(parsec.SomeUntil(parsec.Pop(), parsec.Literal("\n\n")))
	return parsec.Map(parsec.Bounded(chunk, inlines(env.WithBlock(ScopeParagraph), false)),
		func(content []Inline) Paragraph {
			return Paragraph{Content: content}
		})
}

// blockOpener matches, without consuming, where a line would open a block
// other than a paragraph.
func blockOpener() parsec.Parser[struct{}] {
	probe := parsec.Options(
		parsec.Void(parsec.Literal("#")),
		parsec.Void(parsec.Literal("```")),
		parsec.Void(horizontalRule()),
		parsec.Void(quoteMarker()),
		parsec.Void(listMarker(ListTask)),
		parsec.Void(listMarker(ListUnordered)),
		parsec.Void(listMarker(ListOrdered)),
	)
	return func(s parsec.State) parsec.Outcome[struct{}] {
		if !probe.Matches(s) {
			return parsec.Reject[struct{}](s)
		}
		return parsec.Advance(struct{}{}, s)
	}
}
