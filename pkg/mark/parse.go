package mark

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

// Document is the parsed form of a Markdown source.
type Document struct {
	Marks []Mark
}

// Options tunes ParseWithOptions.
type Options struct {
	// Logger receives parser diagnostics. Nil means the default logger.
	Logger *log.Logger

	// Context stops the parse early once it is done. What is left unparsed
	// at that point becomes the trailing Raw node. Nil means never.
	Context context.Context //nolint:containedctx // Options are built per call
}

// Parse parses source. It never fails: whatever the grammar cannot consume
// is appended as a single Raw node, so Stringify always returns source.
func Parse(source string) Document {
	return ParseWithOptions(source, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(source string, opts Options) Document {
	state := parsec.NewState(parsec.FromString(source)).WithLogger(opts.Logger).WithMemo()
	if opts.Context != nil {
		state = state.WithContext(opts.Context)
	}
	out := marks(Root())(state)

	doc := Document{Marks: out.Value}
	if rest := out.Next.Text(); !rest.IsEmpty() {
		doc.Marks = append(doc.Marks, Raw{Value: rest})
	}
	return doc
}

// Stringify reproduces the source the document was parsed from.
func (d Document) Stringify() string {
	return stringifyAll(d.Marks)
}

// Residue returns the input the grammar gave up on, if any.
func (d Document) Residue() (Raw, bool) {
	if len(d.Marks) == 0 {
		return Raw{}, false
	}
	raw, ok := d.Marks[len(d.Marks)-1].(Raw)
	return raw, ok
}
