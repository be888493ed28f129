package export

import "fmt"

// Format is an output format for a parsed document.
type Format string

// Supported formats.
const (
	FormatTree     Format = "tree"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatOutline  Format = "outline"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTree, FormatJSON, FormatYAML, FormatMarkdown, FormatOutline}
}

// ParseFormat parses a format name. The empty string selects FormatTree.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatTree, nil
	}
	f := Format(name)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: tree, json, yaml, markdown, outline", name)
	}
	return f, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTree, FormatJSON, FormatYAML, FormatMarkdown, FormatOutline:
		return true
	default:
		return false
	}
}
