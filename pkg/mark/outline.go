package mark

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OutlineEntry is one heading of a document outline.
type OutlineEntry struct {
	Level int
	Title string
	Slug  string
}

// Outline lists the headings of d in document order, including those
// nested in blockquotes and list items. Slugs follow the GitHub anchor
// rules: repeated slugs get a -1, -2, ... suffix.
func Outline(d Document) []OutlineEntry {
	var (
		entries []OutlineEntry
		seen    = make(map[string]int)
		lower   = cases.Lower(language.Und)
	)
	WalkDocument(d, func(m Mark) bool {
		heading, ok := m.(Heading)
		if !ok {
			return true
		}
		title := strings.TrimSpace(PlainString(heading.Content))
		slug := slugify(lower.String(title))
		if n, dup := seen[slug]; dup {
			seen[slug] = n + 1
			slug += "-" + strconv.Itoa(n+1)
		} else {
			seen[slug] = 0
		}
		entries = append(entries, OutlineEntry{Level: heading.Level(), Title: title, Slug: slug})
		return false
	})
	return entries
}

func slugify(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// PlainString returns the text of inlines with every delimiter removed.
// Line breaks become spaces and images contribute their alt text.
func PlainString(inlines []Inline) string {
	var b strings.Builder
	writePlain(&b, inlines)
	return b.String()
}

func writePlain(b *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch n := in.(type) {
		case PlainText:
			b.WriteString(n.Value.String())
		case Raw:
			b.WriteString(n.Value.String())
		case LineBreak:
			b.WriteByte(' ')
		case InlineCode:
			b.WriteString(n.Content.String())
		case Latex:
			b.WriteString(n.Content.String())
		case Link:
			writePlain(b, n.Text.Content)
		case Image:
			writePlain(b, n.Link.Text.Content)
		case Emphasis:
			writePlain(b, n.Content)
		case Highlight:
			writePlain(b, n.Content)
		case Strikethrough:
			writePlain(b, n.Content)
		case Subscript:
			writePlain(b, n.Content)
		case Superscript:
			writePlain(b, n.Content)
		}
	}
}
