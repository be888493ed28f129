package mark

import "github.com/yaklabco/mdparsec/pkg/parsec"

func notPipeOrNewline(c parsec.Char) bool {
	return c.Value != '|' && !c.IsNewline()
}

// cellPipe is a pipe together with the whitespace around it.
func cellPipe() parsec.Parser[Token] {
	return parsec.Consumed(parsec.And3(
		parsec.TakeWhile(parsec.Char.IsSpace),
		parsec.Literal("|"),
		parsec.TakeWhile(parsec.Char.IsSpace),
	))
}

func tableCell() parsec.Parser[TableCell] {
	pipe := cellPipe()
	build := func(v parsec.Pair[Token, Token]) TableCell {
		return TableCell{Content: Raw{Value: v.First}, Pipe: v.Second}
	}
	closed := parsec.And(parsec.Consumed(parsec.ManyUntil(parsec.Satisfy(notPipeOrNewline), pipe)), pipe)
	open := parsec.And(parsec.Consumed(parsec.SomeUntil(parsec.Satisfy(notPipeOrNewline), pipe)), pipe.Optional())
	return parsec.Map(parsec.Options(closed, open), build)
}

func lineEnd() parsec.Parser[Token] {
	return parsec.Consumed(parsec.Newline()).Optional()
}

// tableRow parses one line of cells. The line must contain a pipe.
func tableRow() parsec.Parser[TableRow] {
	row := parsec.Map(parsec.And3(cellPipe().Optional(), parsec.Some(tableCell()), lineEnd()),
		func(v parsec.Triple[Token, []TableCell, Token]) TableRow {
			return TableRow{Leading: v.First, Cells: v.Second, Newline: v.Third}
		})
	return parsec.Bind(row, func(r TableRow) parsec.Parser[TableRow] {
		if r.Leading.IsEmpty() && !r.hasPipe() {
			return parsec.Fail[TableRow]()
		}
		return parsec.Pure(r)
	})
}

func (r TableRow) hasPipe() bool {
	for _, cell := range r.Cells {
		if !cell.Pipe.IsEmpty() {
			return true
		}
	}
	return false
}

// separatorRow parses the delimiter row, e.g. |:---|---:|.
func separatorRow() parsec.Parser[SeparatorRow] {
	spec := parsec.Consumed(parsec.And4(
		parsec.TakeWhile(parsec.Char.IsSpace),
		parsec.Literal(":").Optional(),
		parsec.TakeWhile1(func(c parsec.Char) bool { return c.Value == '-' }),
		parsec.And(parsec.Literal(":").Optional(), parsec.TakeWhile(parsec.Char.IsSpace)),
	))
	pipe := parsec.Literal("|")
	cell := parsec.Map(parsec.And(spec, pipe.Optional()), func(v parsec.Pair[Token, Token]) SeparatorCell {
		return SeparatorCell{Content: v.First, Pipe: v.Second}
	})
	row := parsec.Map(parsec.And3(pipe.Optional(), parsec.Some(cell), lineEnd()),
		func(v parsec.Triple[Token, []SeparatorCell, Token]) SeparatorRow {
			return SeparatorRow{Leading: v.First, Cells: v.Second, Newline: v.Third}
		})
	return parsec.Bind(row, func(r SeparatorRow) parsec.Parser[SeparatorRow] {
		piped := !r.Leading.IsEmpty()
		for _, cell := range r.Cells {
			piped = piped || !cell.Pipe.IsEmpty()
		}
		if !piped {
			return parsec.Fail[SeparatorRow]()
		}
		return parsec.Pure(r)
	})
}

// table parses a header row, a delimiter row and any number of body rows.
func table() parsec.Parser[Table] {
	return parsec.Map(parsec.And3(tableRow(), separatorRow(), parsec.Many(tableRow())),
		func(v parsec.Triple[TableRow, SeparatorRow, []TableRow]) Table {
			return Table{Header: v.First, Separator: v.Second, Rows: v.Third}
		})
}
