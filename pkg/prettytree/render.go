package prettytree

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Styles colour the parts of a rendered tree.
type Styles struct {
	Label  lipgloss.Style
	Value  lipgloss.Style
	Span   lipgloss.Style
	Branch lipgloss.Style
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Label: plain, Value: plain, Span: plain, Branch: plain}
}

// ColorStyles returns the default coloured styles.
func ColorStyles() Styles {
	return Styles{
		Label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Span:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Options control Render.
type Options struct {
	Styles Styles
	// ValueWidth caps the width of quoted values. Zero means no cap.
	ValueWidth int
	// ShowSpans appends the source span of every node.
	ShowSpans bool
}

// Render draws t.
func Render(t *Tree, opts Options) string {
	return build(t, opts).String() + "\n"
}

func build(t *Tree, opts Options) *tree.Tree {
	out := tree.Root(line(t, opts)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(opts.Styles.Branch)
	for _, child := range t.Children {
		if len(child.Children) == 0 {
			out.Child(line(child, opts))
			continue
		}
		out.Child(build(child, opts))
	}
	return out
}

func line(t *Tree, opts Options) string {
	text := opts.Styles.Label.Render(t.Label)
	if t.HasValue {
		text += " " + opts.Styles.Value.Render(quote(t.Value, opts.ValueWidth))
	}
	if opts.ShowSpans && t.Span != "" {
		text += " " + opts.Styles.Span.Render("@"+t.Span)
	}
	return text
}
