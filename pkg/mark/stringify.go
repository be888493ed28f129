package mark

import "strings"

func (r Raw) Stringify() string       { return r.Value.String() }
func (p PlainText) Stringify() string { return p.Value.String() }
func (l LineBreak) Stringify() string { return l.Newline.String() }
func (n Newline) Stringify() string   { return n.Value.String() }

func (d Delimited) Stringify() string {
	return d.Start.String() + stringifyAll(d.Content) + d.End.String()
}

func (l Link) Stringify() string {
	var b strings.Builder
	b.WriteString(l.Text.Open.String())
	b.WriteString(stringifyAll(l.Text.Content))
	b.WriteString(l.Text.Close.String())
	b.WriteString(l.OpenParen.String())
	b.WriteString(l.Destination.String())
	if l.Title != nil {
		b.WriteString(l.Title.Space.String())
		b.WriteString(l.Title.Open.String())
		b.WriteString(l.Title.Text.String())
		b.WriteString(l.Title.Close.String())
	}
	b.WriteString(l.CloseParen.String())
	return b.String()
}

func (i Image) Stringify() string {
	return i.Bang.String() + i.Link.Stringify()
}

func (c InlineCode) Stringify() string {
	return c.Start.String() + c.Content.String() + c.End.String()
}

func (l Latex) Stringify() string {
	return l.Start.String() + l.Content.String() + l.End.String()
}

func (h Heading) Stringify() string {
	return h.Hashes.String() + h.Spacing.String() + stringifyAll(h.Content)
}

func (p Paragraph) Stringify() string {
	return stringifyAll(p.Content)
}

func (q Blockquote) Stringify() string {
	return prefixLines(stringifyAll(q.Content), q.Markers, 0)
}

func (l List) Stringify() string {
	var b strings.Builder
	for _, item := range l.Items {
		b.WriteString(item.Stringify())
	}
	return b.String()
}

// Stringify reproduces the item, marker and continuation indentation
// included.
func (i ListItem) Stringify() string {
	var b strings.Builder
	b.WriteString(i.Indent.String())
	b.WriteString(i.Bullet.String())
	b.WriteString(i.Dot.String())
	b.WriteString(i.Gap.String())
	if i.Check != nil {
		b.WriteString(i.Check.Open.String())
		b.WriteString(i.Check.Content.String())
		b.WriteString(i.Check.Close.String())
	}
	b.WriteString(i.CheckGap.String())
	b.WriteString(prefixLines(stringifyAll(i.Content), i.Prefixes, 1))
	b.WriteString(i.Trailing.String())
	return b.String()
}

func (c FencedCodeBlock) Stringify() string {
	return c.Open.String() + c.Info.String() + c.Content.String() + c.Close.String()
}

func (r HorizontalRule) Stringify() string {
	return r.Rule.String() + r.Trailing.String()
}

func (t Table) Stringify() string {
	var b strings.Builder
	b.WriteString(t.Header.Stringify())
	b.WriteString(t.Separator.Stringify())
	for _, row := range t.Rows {
		b.WriteString(row.Stringify())
	}
	return b.String()
}

func (r TableRow) Stringify() string {
	var b strings.Builder
	b.WriteString(r.Leading.String())
	for _, cell := range r.Cells {
		b.WriteString(cell.Stringify())
	}
	b.WriteString(r.Newline.String())
	return b.String()
}

func (c TableCell) Stringify() string {
	return c.Content.Stringify() + c.Pipe.String()
}

func (r SeparatorRow) Stringify() string {
	var b strings.Builder
	b.WriteString(r.Leading.String())
	for _, cell := range r.Cells {
		b.WriteString(cell.Content.String())
		b.WriteString(cell.Pipe.String())
	}
	b.WriteString(r.Newline.String())
	return b.String()
}

// stringifyAll concatenates the source of every node.
func stringifyAll[M Mark](marks []M) string {
	var b strings.Builder
	for _, m := range marks {
		b.WriteString(m.Stringify())
	}
	return b.String()
}

// prefixLines re-attaches per-line prefixes that were stripped before a
// nested parse. Line i of body gets prefixes[i-skip]; lines without a
// prefix are written as they are.
func prefixLines(body string, prefixes []Token, skip int) string {
	if len(prefixes) == 0 {
		return body
	}
	var b strings.Builder
	line := 0
	for {
		if idx := line - skip; idx >= 0 && idx < len(prefixes) {
			b.WriteString(prefixes[idx].String())
		}
		end := strings.IndexByte(body, '\n')
		if end < 0 {
			b.WriteString(body)
			return b.String()
		}
		b.WriteString(body[:end+1])
		body = body[end+1:]
		line++
	}
}

// usedLines is the number of line prefixes a nested parse that produced
// body accounts for.
func usedLines(body string) int {
	return strings.Count(body, "\n") + 1
}
