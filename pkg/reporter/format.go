package reporter

import (
	"fmt"
	"slices"
	"strings"
)

// Format selects how check and compare results are written.
type Format string

// Output formats.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// Formats lists every output format.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatDiff, FormatSummary}
}

// ParseFormat parses a format name. The empty string selects FormatText.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(name)
	if !f.IsValid() {
		names := make([]string, 0, len(Formats()))
		for _, known := range Formats() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(names, ", "))
	}
	return f, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return slices.Contains(Formats(), f)
}
