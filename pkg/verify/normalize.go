package verify

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/parsec"
)

// NormalizeOptions selects the rewrites Normalize applies.
type NormalizeOptions struct {
	// Bullet replaces the marker of every unordered and task list item.
	// Empty keeps the markers as written.
	Bullet string

	// HeadingSpace inserts a space between the hashes and the text of
	// headings written as "#Title".
	HeadingSpace bool

	// FinalNewline makes the document end with exactly one newline.
	FinalNewline bool
}

// DefaultNormalizeOptions returns the rewrites mdparsec fmt applies by default.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		HeadingSpace: true,
		FinalNewline: true,
	}
}

// Validate reports an error for an unusable bullet.
func (o NormalizeOptions) Validate() error {
	switch o.Bullet {
	case "", "-", "*", "+":
		return nil
	default:
		return fmt.Errorf("invalid bullet %q: must be one of -, *, +", o.Bullet)
	}
}

// Normalize re-emits doc with the selected rewrites applied. Everything
// the rewrites do not touch is reproduced byte for byte.
func Normalize(doc mark.Document, opts NormalizeOptions) string {
	out := mark.Document{Marks: normalizeMarks(doc.Marks, opts)}.Stringify()
	if opts.FinalNewline && out != "" {
		out = strings.TrimRight(out, "\n") + "\n"
	}
	return out
}

func normalizeMarks(marks []mark.Mark, opts NormalizeOptions) []mark.Mark {
	out := make([]mark.Mark, len(marks))
	for i, m := range marks {
		switch v := m.(type) {
		case mark.Heading:
			if opts.HeadingSpace && v.Spacing.IsEmpty() && len(v.Content) > 0 {
				v.Spacing = parsec.FromString(" ")
			}
			out[i] = v
		case mark.Blockquote:
			v.Content = normalizeMarks(v.Content, opts)
			out[i] = v
		case mark.List:
			items := make([]mark.ListItem, len(v.Items))
			for j, item := range v.Items {
				if opts.Bullet != "" && v.ListKind != mark.ListOrdered {
					item.Bullet = parsec.FromString(opts.Bullet)
				}
				item.Content = normalizeMarks(item.Content, opts)
				items[j] = item
			}
			v.Items = items
			out[i] = v
		default:
			out[i] = m
		}
	}
	return out
}
