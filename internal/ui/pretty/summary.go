package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdparsec/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 12 files failed (1 round trip, 3 mismatches), 1 errored".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := stats.FilesProcessed + stats.FilesErrored

	if stats.FilesFailed == 0 && stats.FilesErrored == 0 {
		msg := s.Success.Render(fmt.Sprintf("All %d %s verified", checked, plural(checked, wordFile, wordFiles))) +
			s.Dim.Render(fmt.Sprintf(" (%d marks, %d bytes)", stats.Marks, stats.Bytes))
		return msg + s.formatRewrites(stats) + "\n"
	}

	var parts []string

	if stats.FilesFailed > 0 {
		var causes []string
		if stats.FilesRoundTripFailed > 0 {
			causes = append(causes, s.Error.Render(fmt.Sprintf("%d round trip", stats.FilesRoundTripFailed)))
		}
		if stats.Mismatches > 0 {
			causes = append(causes, s.Error.Render(fmt.Sprintf("%d %s",
				stats.Mismatches, plural(stats.Mismatches, "mismatch", "mismatches"))))
		}
		if stats.FilesWithResidue > 0 {
			causes = append(causes, s.Warning.Render(fmt.Sprintf("%d with residue", stats.FilesWithResidue)))
		}

		failed := fmt.Sprintf("%d of %d %s failed", stats.FilesFailed, checked, plural(checked, wordFile, wordFiles))
		if len(causes) > 0 {
			failed += " (" + strings.Join(causes, ", ") + ")"
		}
		parts = append(parts, failed)
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + s.formatRewrites(stats) + "\n"
}

func (s *Styles) formatRewrites(stats runner.Stats) string {
	var out string
	if stats.FilesWritten > 0 {
		out += ", " + s.Success.Render(fmt.Sprintf("%d %s formatted",
			stats.FilesWritten, plural(stats.FilesWritten, wordFile, wordFiles)))
	}
	if pending := stats.FilesModified - stats.FilesWritten - stats.FilesSkipped; pending > 0 {
		out += ", " + s.Warning.Render(fmt.Sprintf("%d %s formatting",
			pending, plural(pending, "needs", "need")))
	}
	if stats.FilesSkipped > 0 {
		out += ", " + s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	return out
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, style func(...string) string, value int) {
		builder.WriteString(fmt.Sprintf("  %-22s%s\n", label+":", style(strconv.Itoa(value))))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render, stats.FilesProcessed+stats.FilesErrored)
	if stats.FilesErrored > 0 {
		row("Files errored", s.Failure.Render, stats.FilesErrored)
	}
	if stats.FilesFailed > 0 {
		row("Files failed", s.Failure.Render, stats.FilesFailed)
	}

	builder.WriteString("\n")

	row("Marks", s.SummaryValue.Render, stats.Marks)
	row("Bytes", s.SummaryValue.Render, stats.Bytes)
	if stats.FilesRoundTripFailed > 0 {
		row("Round trip failures", s.Error.Render, stats.FilesRoundTripFailed)
	}
	if stats.Mismatches > 0 {
		row("Structure mismatches", s.Error.Render, stats.Mismatches)
	}
	if stats.FilesWithResidue > 0 {
		row("Files with residue", s.Warning.Render, stats.FilesWithResidue)
	}
	if stats.FilesModified > 0 {
		row("Files to format", s.Warning.Render, stats.FilesModified)
	}
	if stats.FilesWritten > 0 {
		row("Files formatted", s.Success.Render, stats.FilesWritten)
	}
	if stats.FilesSkipped > 0 {
		row("Rewrites skipped", s.Warning.Render, stats.FilesSkipped)
	}
	if stats.FilesNotText > 0 {
		row("Not UTF-8 text", s.Warning.Render, stats.FilesNotText)
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesFailed > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Verification failed"))
	case stats.FilesModified > stats.FilesWritten:
		builder.WriteString(s.Warning.Render("Verification passed with pending changes"))
	default:
		builder.WriteString(s.Success.Render("Verification passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
