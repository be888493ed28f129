package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/mdparsec/pkg/analysis"
)

// Table formatting constants.
const (
	tableCellPadding = 1
	minFileWidth     = 20
	minMessageWidth  = 30
	maxFileWidth     = 40
	defaultTermWidth = 100
)

// TableRow represents a single row in the findings table.
type TableRow struct {
	File     string
	Location string
	Severity string
	Message  string
	Kind     string
}

// FindingToTableRow converts a finding to a table row.
func FindingToTableRow(finding *analysis.Finding) TableRow {
	var location string
	if finding.Line > 0 {
		location = fmt.Sprintf("%d:%d", finding.Line, finding.Column)
	}
	return TableRow{
		File:     finding.FilePath,
		Location: location,
		Severity: finding.Severity,
		Message:  finding.Message,
		Kind:     string(finding.Kind),
	}
}

// TableFormatter formats findings as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats every finding of the report in one table.
func (t *TableFormatter) FormatTable(report *analysis.Report) string {
	if report == nil || len(report.Findings) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(report.Findings))
	for i := range report.Findings {
		rows = append(rows, FindingToTableRow(&report.Findings[i]))
	}

	return t.render(rows, true) + "\n" + t.formatLegend() + "\n"
}

// FormatFileTable formats one file's findings as a standalone table
// without the file column.
func (t *TableFormatter) FormatFileTable(findings []analysis.Finding) string {
	if len(findings) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(findings))
	for i := range findings {
		rows = append(rows, FindingToTableRow(&findings[i]))
	}

	return t.render(rows, false) + "\n" + t.formatFileSummary(rows) + "\n"
}

func (t *TableFormatter) render(rows []TableRow, withFile bool) string {
	fileWidth := minFileWidth
	for _, row := range rows {
		fileWidth = max(fileWidth, len(row.File))
	}
	fileWidth = min(fileWidth, maxFileWidth)

	headers := []string{"LOC", "SEVERITY", "MESSAGE", "KIND"}
	if withFile {
		headers = append([]string{"FILE"}, headers...)
	}

	messageWidth := t.messageWidth(rows, withFile, fileWidth)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := []string{row.Location, row.Severity, truncateString(row.Message, messageWidth), row.Kind}
		if withFile {
			cells = append([]string{truncateFilePath(row.File, fileWidth)}, cells...)
		}
		data = append(data, cells)
	}

	severityCol := 1
	if withFile {
		severityCol = 2
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.TableBorder).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, tableCellPadding)
			if row == table.HeaderRow {
				return t.styles.TableHeader.Padding(0, tableCellPadding)
			}
			if col != severityCol && col != severityCol+1 {
				return base
			}
			return t.getRowStyle(rows[row].Severity).Padding(0, tableCellPadding)
		})

	return tbl.Render()
}

// messageWidth bounds the message column so the table fits the terminal.
func (t *TableFormatter) messageWidth(rows []TableRow, withFile bool, fileWidth int) int {
	locWidth, kindWidth := len("LOC"), len("KIND")
	for _, row := range rows {
		locWidth = max(locWidth, len(row.Location))
		kindWidth = max(kindWidth, len(row.Kind))
	}

	columns := 4
	used := locWidth + len("SEVERITY") + kindWidth
	if withFile {
		columns++
		used += fileWidth
	}
	// Cell padding on both sides plus one border per column and the closing border.
	used += columns*(2*tableCellPadding+1) + 1

	return max(minMessageWidth, t.termWidth-used)
}

// getRowStyle returns the appropriate style for a severity level.
func (t *TableFormatter) getRowStyle(severity string) lipgloss.Style {
	switch severity {
	case analysis.SeverityError:
		return t.styles.TableErrorRow
	case analysis.SeverityWarning:
		return t.styles.TableWarnRow
	case analysis.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

func (t *TableFormatter) formatFileSummary(rows []TableRow) string {
	var totals analysis.Totals
	for _, row := range rows {
		switch row.Severity {
		case analysis.SeverityError:
			totals.Errors++
		case analysis.SeverityWarning:
			totals.Warnings++
		case analysis.SeverityInfo:
			totals.Infos++
		}
	}
	return " " + strings.Join(t.severityParts(totals), " | ")
}

func (t *TableFormatter) severityParts(totals analysis.Totals) []string {
	var parts []string
	if totals.Errors > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d %s", totals.Errors, plural(totals.Errors, "error", "errors"))))
	}
	if totals.Warnings > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, plural(totals.Warnings, "warning", "warnings"))))
	}
	if totals.Infos > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	return parts
}

// formatLegend formats the legend explaining the table colors.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Kinds: round-trip | structure-mismatch | residue | unformatted | skipped | not-text | error")
	}

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s = error  %s = warning  %s = info",
			t.styles.TableErrorRow.Render(" error "),
			t.styles.TableWarnRow.Render(" warning "),
			t.styles.TableInfoRow.Render(" info "),
		),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(totals analysis.Totals, duration string) string {
	parts := []string{fmt.Sprintf("%d %s checked", totals.Files, plural(totals.Files, wordFile, wordFiles))}
	parts = append(parts, t.severityParts(totals)...)

	if totals.ResidueChars > 0 {
		parts = append(parts, t.styles.Dim.Render(fmt.Sprintf("%d residue chars", totals.ResidueChars)))
	}

	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
