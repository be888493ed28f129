package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/mdparsec/internal/ui/pretty"
	"github.com/yaklabco/mdparsec/pkg/analysis"
)

// maxSummaryPath is the longest file path the files table shows before it
// keeps only the tail.
const maxSummaryPath = 58

// SummaryRenderer prints findings aggregated by kind and by file, followed
// by a totals line.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		out:    opts.Writer,
	}
}

// summaryRow is one line of a summary table. The label is coloured by the
// worst severity counted in the row.
type summaryRow struct {
	cells    []string
	errors   int
	warnings int
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Findings == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No findings"))
		return nil
	}

	sections := []string{r.kindTable(report.ByKind), r.fileTable(report.ByFile)}
	if r.opts.SummaryOrder == SummaryOrderFiles {
		sections[0], sections[1] = sections[1], sections[0]
	}
	for _, section := range sections {
		if section != "" {
			fmt.Fprintln(r.out, section)
			fmt.Fprintln(r.out)
		}
	}

	fmt.Fprintln(r.out, r.totals(report.Totals))
	return nil
}

func (r *SummaryRenderer) kindTable(kinds []analysis.KindAnalysis) string {
	if len(kinds) == 0 {
		return ""
	}
	rows := make([]summaryRow, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, summaryRow{
			cells:    counts(string(k.Kind), k.Findings, k.Errors, k.Warnings, len(k.Files)),
			errors:   k.Errors,
			warnings: k.Warnings,
		})
	}
	return r.table("Kinds Summary", []string{"Kind", "Count", "Errors", "Warnings", "Files"}, rows)
}

func (r *SummaryRenderer) fileTable(files []analysis.FileAnalysis) string {
	if len(files) == 0 {
		return ""
	}
	rows := make([]summaryRow, 0, len(files))
	for _, f := range files {
		path := f.Path
		if n := len([]rune(path)); n > maxSummaryPath {
			path = "…" + string([]rune(path)[n-maxSummaryPath+1:])
		}
		rows = append(rows, summaryRow{
			cells:    counts(path, f.Findings, f.Errors, f.Warnings),
			errors:   f.Errors,
			warnings: f.Warnings,
		})
	}
	return r.table("Files Summary", []string{"File", "Count", "Errors", "Warnings"}, rows)
}

func counts(label string, values ...int) []string {
	cells := []string{label}
	for _, v := range values {
		cells = append(cells, strconv.Itoa(v))
	}
	return cells
}

// table renders a borderless table with a rule under the header. Numbers
// are right-aligned.
func (r *SummaryRenderer) table(title string, headers []string, rows []summaryRow) string {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.cells)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(r.styles.TableSeparator).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().PaddingRight(2)
			if col > 0 {
				cell = cell.Align(lipgloss.Right)
			}
			switch {
			case row == table.HeaderRow:
				return r.styles.TableHeader.Inherit(cell)
			case col > 0:
				return cell
			case rows[row].errors > 0:
				return r.styles.TableErrorRow.Inherit(cell)
			case rows[row].warnings > 0:
				return r.styles.TableWarnRow.Inherit(cell)
			default:
				return cell
			}
		})

	return r.styles.Bold.Render(title) + "\n" + tbl.Render()
}

func (r *SummaryRenderer) totals(totals analysis.Totals) string {
	line := fmt.Sprintf("%d %s", totals.Findings, plural(totals.Findings, "finding", "findings"))

	var severities []string
	if totals.Errors > 0 {
		severities = append(severities, r.styles.Error.Render(fmt.Sprintf("%d errors", totals.Errors)))
	}
	if totals.Warnings > 0 {
		severities = append(severities, r.styles.Warning.Render(fmt.Sprintf("%d warnings", totals.Warnings)))
	}
	if totals.Infos > 0 {
		severities = append(severities, r.styles.Info.Render(fmt.Sprintf("%d info", totals.Infos)))
	}
	if len(severities) > 0 {
		line += " (" + strings.Join(severities, ", ") + ")"
	}

	line += fmt.Sprintf(" in %d %s", totals.FilesWithFindings, plural(totals.FilesWithFindings, "file", "files"))
	return r.styles.Bold.Render("Total: ") + line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
