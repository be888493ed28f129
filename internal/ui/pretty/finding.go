package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdparsec/pkg/analysis"
)

// FormatFinding formats a single finding for terminal output.
func (s *Styles) FormatFinding(finding *analysis.Finding, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(finding.FilePath)
	if finding.Line > 0 {
		location += fmt.Sprintf(":%d", finding.Line)
		if finding.Column > 0 {
			location += fmt.Sprintf(":%d", finding.Column)
		}
	}

	// Main line: location  severity  message  (kind)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(finding.Severity),
		s.Message.Render(finding.Message),
		s.Kind.Render("("+string(finding.Kind)+")"),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, finding.Column))
	}

	if finding.Kind == analysis.KindMismatch {
		builder.WriteString(s.formatOutlineRun("reference", finding.Want))
		builder.WriteString(s.formatOutlineRun("mdparsec ", finding.Got))
	}

	return builder.String()
}

func (s *Styles) formatOutlineRun(label string, lines []string) string {
	if len(lines) == 0 {
		return "    " + s.Dim.Render(label+":") + " " + s.Outline.Render("(nothing)") + "\n"
	}
	var builder strings.Builder
	for i, line := range lines {
		prefix := strings.Repeat(" ", len(label)+1)
		if i == 0 {
			prefix = label + ":"
		}
		builder.WriteString("    " + s.Dim.Render(prefix) + " " + s.Outline.Render(line) + "\n")
	}
	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(severity string) string {
	switch severity {
	case analysis.SeverityError:
		return s.Error.Render("error")
	case analysis.SeverityWarning:
		return s.Warning.Render("warning")
	case analysis.SeverityInfo:
		return s.Info.Render("info")
	default:
		return severity
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case findingCount == 1:
		header += s.Dim.Render(" (1 finding)")
	case findingCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d findings)", findingCount))
	}
	return header
}
