// Package langdetect guesses the language of fenced code blocks that carry
// no info string. It relies on go-enry for shebangs and the classifier, with
// a few cheap signature checks in front.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/mdparsec/pkg/mdast"
)

// signature recognises a language from an unmistakable marker in the code.
type signature struct {
	lang  string
	match func(code, trimmed string) bool
}

//nolint:gochecknoglobals // Read-only rule table
var signatures = []signature{
	{"go", func(_, trimmed string) bool { return strings.HasPrefix(trimmed, "package ") }},
	{"python", isPython},
	{"html", func(_, trimmed string) bool {
		lower := strings.ToLower(trimmed)
		return strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html")
	}},
	{"json", func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && strings.Contains(trimmed, `"`)
	}},
	{"dockerfile", func(code, trimmed string) bool {
		return strings.HasPrefix(trimmed, "FROM ") ||
			(strings.Contains(code, "WORKDIR ") && strings.Contains(code, "COPY "))
	}},
	{"sql", func(_, trimmed string) bool {
		upper := strings.ToUpper(trimmed)
		for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, verb) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ string) bool {
		return strings.Contains(code, "fn main()") || strings.Contains(code, "println!")
	}},
	{"javascript", func(code, _ string) bool {
		return strings.Contains(code, "=>") || strings.Contains(code, "console.log")
	}},
	{"yaml", isYAML},
}

// classifierCandidates bounds the enry classifier to languages that show up
// in documentation.
//
//nolint:gochecknoglobals // Read-only candidate list
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Ruby", "Rust",
	"Java", "C", "C++", "SQL", "JSON", "YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns the fence tag for code, e.g. "go" or "bash". It reports
// false when no language could be told with confidence.
func Detect(code string) (string, bool) {
	if strings.TrimSpace(code) == "" {
		return "", false
	}
	if lang, safe := enry.GetLanguageByShebang([]byte(code)); safe {
		return fenceTag(lang), true
	}

	trimmed := strings.TrimSpace(code)
	for _, sig := range signatures {
		if sig.match(code, trimmed) {
			return sig.lang, true
		}
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(code), classifierCandidates); safe && lang != "" {
		return fenceTag(lang), true
	}
	return "", false
}

// Annotate fills in the language of every code block under root that has
// no info string, marking it as detected. It returns the number of blocks
// it annotated.
func Annotate(root *mdast.Node) int {
	count := 0
	for _, node := range mdast.OfKind(root, mdast.NodeCodeBlock) {
		if node.Block == nil || node.Block.CodeBlock == nil || node.Block.CodeBlock.Info != "" {
			continue
		}
		var code string
		if node.Inline != nil {
			code = string(node.Inline.Text)
		}
		lang, ok := Detect(code)
		if !ok {
			continue
		}
		node.Block.CodeBlock.Language = lang
		node.Block.CodeBlock.Detected = true
		count++
	}
	return count
}

func isPython(code, trimmed string) bool {
	switch {
	case strings.Contains(code, "def ") && strings.Contains(code, "):"):
		return true
	case strings.Contains(code, "__name__"):
		return true
	case strings.HasPrefix(trimmed, "import ") && !strings.Contains(code, "import ("):
		return true
	default:
		return strings.HasPrefix(trimmed, "from ") && strings.Contains(code, " import ")
	}
}

// isYAML looks for at least two "key: value" or "- item" lines.
func isYAML(code, _ string) bool {
	hits := 0
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "- ") ||
			(strings.Contains(line, ": ") && !strings.ContainsAny(line, "({") && !strings.HasPrefix(line, `"`)) {
			hits++
		}
	}
	return hits >= 2
}

// fenceTag converts an enry language name to the usual fence tag.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
