// Package pretty renders check results for the terminal with Lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI colors used across the output.
const (
	colorRed     = "9"
	colorGreen   = "10"
	colorYellow  = "11"
	colorBlue    = "12"
	colorMagenta = "13"
	colorCyan    = "14"
	colorWhite   = "7"
	colorGrey    = "8"
)

// Styles holds the renderers for every part of mdparsec's output. With color
// off every style is plain and renders text unchanged.
type Styles struct {
	// Severities.
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Parts of a finding: the file, the finding kind and message, the
	// outline lines of a structure mismatch and the source excerpt under a
	// round-trip failure.
	FilePath   lipgloss.Style
	Kind       lipgloss.Style
	Message    lipgloss.Style
	Outline    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Unified diffs from fmt --diff and round-trip failures.
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Run summary.
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Findings table.
	TableHeader    lipgloss.Style
	TableBorder    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableInfoRow   lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// styleBuilder hands out styles, or plain styles when color is off.
type styleBuilder bool

func (b styleBuilder) fg(color string) lipgloss.Style {
	if !b {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (b styleBuilder) bold(color string) lipgloss.Style {
	if !b {
		return lipgloss.NewStyle()
	}
	style := lipgloss.NewStyle().Bold(true)
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}

func (b styleBuilder) italic(color string) lipgloss.Style {
	if !b {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Italic(true)
}

// NewStyles creates the output styles.
func NewStyles(colorEnabled bool) *Styles {
	b := styleBuilder(colorEnabled)
	plain := lipgloss.NewStyle()

	return &Styles{
		Error:   b.bold(colorRed),
		Warning: b.bold(colorYellow),
		Info:    b.bold(colorBlue),

		FilePath:   b.bold(""),
		Kind:       b.fg(colorGrey),
		Message:    plain,
		Outline:    b.italic(colorMagenta),
		SourceLine: b.fg(colorWhite),
		Caret:      b.fg(colorRed),

		DiffHeader:  b.bold(""),
		DiffHunk:    b.fg(colorCyan),
		DiffAdd:     b.fg(colorGreen),
		DiffRemove:  b.fg(colorRed),
		DiffContext: b.fg(colorGrey),

		SummaryTitle: b.bold(""),
		SummaryValue: plain,
		Success:      b.bold(colorGreen),
		Failure:      b.bold(colorRed),

		TableHeader:    b.bold(colorWhite),
		TableBorder:    b.fg(colorGrey),
		TableErrorRow:  b.fg(colorRed),
		TableWarnRow:   b.fg(colorYellow),
		TableInfoRow:   b.fg(colorBlue),
		TableLegend:    b.italic(colorGrey),
		TableSeparator: b.fg(colorGrey),

		Dim:  b.fg(colorGrey),
		Bold: b.bold(""),
	}
}

// IsColorEnabled reports whether output to writer should be colored.
// mode is "always", "never" or "auto"; anything else means auto. Auto
// colors terminals only and honours NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
