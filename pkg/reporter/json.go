package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdparsec/pkg/analysis"
	"github.com/yaklabco/mdparsec/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path         string             `json:"path"`
	Bytes        int                `json:"bytes"`
	Marks        int                `json:"marks"`
	RoundTrip    bool               `json:"roundTrip"`
	ResidueChars int                `json:"residueChars"`
	Mismatches   []JSONMismatch     `json:"mismatches,omitempty"`
	Findings     []analysis.Finding `json:"findings"`
	Modified     bool               `json:"modified,omitempty"`
	Written      bool               `json:"written,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// JSONMismatch is a run of outline lines on which mdparsec and the
// reference parser disagree.
type JSONMismatch struct {
	OutlineLine int      `json:"outlineLine"`
	SourceLine  int      `json:"sourceLine,omitempty"`
	Want        []string `json:"want"`
	Got         []string `json:"got"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int            `json:"filesChecked"`
	FilesFailed       int            `json:"filesFailed"`
	FilesWithFindings int            `json:"filesWithFindings"`
	FilesModified     int            `json:"filesModified"`
	FilesWritten      int            `json:"filesWritten"`
	FilesErrored      int            `json:"filesErrored"`
	Marks             int            `json:"marks"`
	Bytes             int            `json:"bytes"`
	TotalFindings     int            `json:"totalFindings"`
	BySeverity        map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: analysis.ReportVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)
		fileResult := JSONFileResult{
			Path:     path,
			Findings: analysis.FileFindings(path, file),
		}
		if fileResult.Findings == nil {
			fileResult.Findings = make([]analysis.Finding, 0)
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if report := file.Report; report != nil {
			fileResult.Bytes = report.Bytes
			fileResult.Marks = report.Marks
			fileResult.RoundTrip = report.RoundTrip
			fileResult.ResidueChars = report.ResidueChars
			fileResult.Modified = report.Modified
			fileResult.Written = report.Written

			for _, m := range report.Mismatches {
				fileResult.Mismatches = append(fileResult.Mismatches, JSONMismatch{
					OutlineLine: m.Line,
					SourceLine:  m.SourceLine,
					Want:        nonNil(m.Want),
					Got:         nonNil(m.Got),
				})
			}

			if report.Failed() {
				output.Summary.FilesFailed++
			}
			output.Summary.Marks += report.Marks
			output.Summary.Bytes += report.Bytes
		}

		for _, finding := range fileResult.Findings {
			output.Summary.TotalFindings++
			output.Summary.BySeverity[finding.Severity]++
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}
		if fileResult.Written {
			output.Summary.FilesWritten++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}

func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
