package mark

import "github.com/yaklabco/mdparsec/pkg/parsec"

// itemMarker is everything on the first line of an item before its content.
type itemMarker struct {
	indent   Token
	bullet   Token
	dot      Token
	gap      Token
	check    *Bracketed[Token]
	checkGap Token
}

func bulletMarker() parsec.Parser[itemMarker] {
	return parsec.Map(parsec.And3(parsec.Spaces().Optional(), parsec.Consumed(parsec.OneOf("-*+")), parsec.Spaces()),
		func(v parsec.Triple[Token, Token, Token]) itemMarker {
			return itemMarker{indent: v.First, bullet: v.Second, gap: v.Third}
		})
}

func checkBox() parsec.Parser[Bracketed[Token]] {
	return parsec.Map(parsec.Between(parsec.Literal("["), parsec.Consumed(parsec.OneOf(" xX")), parsec.Literal("]")),
		func(v parsec.Triple[Token, Token, Token]) Bracketed[Token] {
			return Bracketed[Token]{Open: v.First, Content: v.Second, Close: v.Third}
		})
}

// listMarker parses the marker of an item of the given kind, including the
// whitespace that separates it from the content.
func listMarker(kind ListKind) parsec.Parser[itemMarker] {
	switch kind {
	case ListTask:
		return parsec.Map(parsec.And3(bulletMarker(), checkBox(), parsec.Spaces()),
			func(v parsec.Triple[itemMarker, Bracketed[Token], Token]) itemMarker {
				m := v.First
				m.check = &v.Second
				m.checkGap = v.Third
				return m
			})
	case ListOrdered:
		return parsec.Map(parsec.And4(parsec.Spaces().Optional(), parsec.Digits(), parsec.Consumed(parsec.OneOf(".)")), parsec.Spaces()),
			func(v parsec.Quad[Token, Token, Token, Token]) itemMarker {
				return itemMarker{indent: v.First, bullet: v.Second, dot: v.Third, gap: v.Fourth}
			})
	default:
		return bulletMarker()
	}
}

// blankLines consumes the rest of the current line and any blank lines
// after it.
func blankLines() parsec.Parser[Token] {
	line := parsec.And(parsec.TakeWhile(parsec.Char.IsSpace), parsec.Newline())
	return parsec.Consumed(parsec.Many(line))
}

// listItem parses one item. The item body is every following line indented
// at least as far as the first character of content; it is de-indented and
// parsed as a nested document.
func listItem(env Environment, kind ListKind) parsec.Parser[ListItem] {
	marker := listMarker(kind)
	body := marks(env.WithBlock(ScopeListItem))
	trailing := blankLines()
	return func(s parsec.State) parsec.Outcome[ListItem] {
		m := marker(s)
		if !m.OK {
			return parsec.Reject[ListItem](s)
		}
		column := contentColumn(m.Value, m.Next.Text())
		block := parsec.Fork(parsec.WholeIndentedBlock(column), func(b parsec.IndentedBlock) Token {
			return b.Content
		}, body)(m.Next)
		if !block.OK {
			return parsec.Reject[ListItem](s)
		}
		end := trailing(block.Next)

		content := block.Value.Second
		prefixes := block.Value.First.Prefixes
		prefixes = prefixes[:min(len(prefixes), usedLines(stringifyAll(content))-1)]
		return parsec.Advance(ListItem{
			Indent:   m.Value.indent,
			Bullet:   m.Value.bullet,
			Dot:      m.Value.dot,
			Gap:      m.Value.gap,
			Check:    m.Value.check,
			CheckGap: m.Value.checkGap,
			Content:  content,
			Prefixes: prefixes,
			Trailing: end.Value,
		}, end.Next)
	}
}

// contentColumn is the column the item content starts at. At the end of
// input it is the column right after the marker.
func contentColumn(m itemMarker, rest Token) int {
	if pos, ok := rest.Start(); ok {
		return pos.Column
	}
	for _, tok := range []Token{m.checkGap, m.gap} {
		if last, ok := tok.Last(); ok {
			return last.Pos.Column + 1
		}
	}
	return 0
}

func list(env Environment) parsec.Parser[List] {
	of := func(kind ListKind) parsec.Parser[List] {
		return parsec.Map(parsec.Some(listItem(env, kind)), func(items []ListItem) List {
			return List{ListKind: kind, Items: items}
		})
	}
	return parsec.Options(of(ListTask), of(ListUnordered), of(ListOrdered))
}
