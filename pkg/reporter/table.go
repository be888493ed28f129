package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/mdparsec/internal/ui/pretty"
	"github.com/yaklabco/mdparsec/pkg/analysis"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableRenderer formats findings as a styled table with color-coded rows.
type TableRenderer struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	out       io.Writer
}

// NewTableRenderer creates a new table renderer.
func NewTableRenderer(opts Options) *TableRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableRenderer{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, colorEnabled, getTerminalWidth(opts.Writer)),
		out:       opts.Writer,
	}
}

// Render implements Renderer.
func (r *TableRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.out, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report.Totals.Files == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw, r.styles.Success.Render("No files to check."))
		}
		return nil
	}

	if !report.Totals.HasFindings() {
		if r.opts.ShowSummary {
			fmt.Fprintln(bw)
			fmt.Fprintln(bw, r.styles.Success.Render("All files passed!"))
			fmt.Fprintln(bw, r.styles.Dim.Render(
				fmt.Sprintf("%d files checked", report.Totals.Files),
			))
		}
		return nil
	}

	if r.opts.PerFile {
		r.renderPerFile(bw, report)
	} else {
		r.renderCombined(bw, report)
	}

	return nil
}

// renderCombined outputs all files in a single table.
func (r *TableRenderer) renderCombined(w io.Writer, report *analysis.Report) {
	fmt.Fprint(w, r.formatter.FormatTable(report))

	if r.opts.ShowSummary {
		fmt.Fprintln(w, r.formatter.FormatTableSummary(report.Totals, ""))
		fmt.Fprintln(w)
	}
}

// renderPerFile outputs a separate table for each file with findings.
func (r *TableRenderer) renderPerFile(w io.Writer, report *analysis.Report) {
	var start int
	for i := 1; i <= len(report.Findings); i++ {
		if i < len(report.Findings) && report.Findings[i].FilePath == report.Findings[start].FilePath {
			continue
		}
		group := report.Findings[start:i]

		fmt.Fprintln(w)
		fmt.Fprintln(w, r.styles.Bold.Render(group[0].FilePath))
		fmt.Fprint(w, r.formatter.FormatFileTable(group))

		start = i
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.styles.TableSeparator.Render("════════════════════════════════════════════════════════════════════════════════"))
		fmt.Fprintln(w, r.styles.Bold.Render("Overall Summary"))
		fmt.Fprintln(w, r.formatter.FormatTableSummary(report.Totals, ""))
	}
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
