package export

import (
	"strings"

	"github.com/yaklabco/mdparsec/pkg/mark"
)

// TOCOptions control TOC.
type TOCOptions struct {
	// MinLevel and MaxLevel bound the heading levels listed. Zero means
	// no bound.
	MinLevel int
	MaxLevel int

	// Links renders entries as links to the heading anchors.
	Links bool
}

// TOC renders outline entries as a nested Markdown list. Indentation is
// relative to the shallowest level listed.
func TOC(entries []mark.OutlineEntry, opts TOCOptions) string {
	var kept []mark.OutlineEntry
	for _, e := range entries {
		if opts.MinLevel > 0 && e.Level < opts.MinLevel {
			continue
		}
		if opts.MaxLevel > 0 && e.Level > opts.MaxLevel {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return ""
	}

	base := kept[0].Level
	for _, e := range kept {
		base = min(base, e.Level)
	}

	var b strings.Builder
	for _, e := range kept {
		b.WriteString(strings.Repeat("  ", e.Level-base))
		b.WriteString("- ")
		if opts.Links {
			b.WriteString("[" + e.Title + "](#" + e.Slug + ")")
		} else {
			b.WriteString(e.Title)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
