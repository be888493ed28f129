// Package analysis aggregates check results into findings grouped by file
// and by kind. Renderers in pkg/reporter format the resulting Report.
package analysis

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/mdparsec/pkg/runner"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

// ReportVersion is the current version of the report format.
const ReportVersion = "1.0.0"

// Severity values.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// makeRelativePath converts an absolute path to relative if workDir is set.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds intermediate state during analysis.
type analysisContext struct {
	kindMap   map[Kind]*KindAnalysis
	fileMap   map[string]*FileAnalysis
	kindFiles map[Kind]map[string]bool
	fileKinds map[string]map[Kind]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		kindMap:   make(map[Kind]*KindAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		kindFiles: make(map[Kind]map[string]bool),
		fileKinds: make(map[string]map[Kind]bool),
	}
}

func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileKinds[path] = make(map[Kind]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) getOrCreateKindAnalysis(kind Kind) *KindAnalysis {
	if _, ok := ctx.kindMap[kind]; !ok {
		ctx.kindMap[kind] = &KindAnalysis{Kind: kind}
		ctx.kindFiles[kind] = make(map[string]bool)
	}
	return ctx.kindMap[kind]
}

func countSeverity(severity string, errors, warnings, infos *int) {
	switch severity {
	case SeverityError:
		*errors++
	case SeverityWarning:
		*warnings++
	case SeverityInfo:
		*infos++
	}
}

// FileFindings lists the findings for one file outcome, reported under path.
func FileFindings(path string, outcome runner.FileOutcome) []Finding {
	if outcome.Error != nil {
		return []Finding{{
			FilePath: path,
			Kind:     KindError,
			Severity: SeverityError,
			Message:  outcome.Error.Error(),
		}}
	}

	report := outcome.Report
	if report == nil {
		return nil
	}
	if report.NotText {
		return []Finding{{
			FilePath: path,
			Kind:     KindNotText,
			Severity: SeverityWarning,
			Message:  "not valid UTF-8 text; file was not parsed",
		}}
	}

	var findings []Finding

	if !report.RoundTrip {
		f := Finding{
			FilePath: path,
			Kind:     KindRoundTrip,
			Severity: SeverityError,
			Message:  "document does not reproduce its source",
		}
		if diff := report.RoundTripDiff; diff != nil {
			f.Line, f.Column = diff.Line, diff.Column
		}
		findings = append(findings, f)
	}

	for _, m := range report.Mismatches {
		findings = append(findings, Finding{
			FilePath: path,
			Kind:     KindMismatch,
			Severity: SeverityError,
			Message:  m.String(),
			Line:     m.SourceLine,
			Want:     m.Want,
			Got:      m.Got,
		})
	}

	if report.ResidueChars > 0 {
		severity := SeverityInfo
		if report.Strict {
			severity = SeverityError
		}
		findings = append(findings, Finding{
			FilePath: path,
			Kind:     KindResidue,
			Severity: severity,
			Message:  fmt.Sprintf("%d characters kept as residue", report.ResidueChars),
		})
	}

	switch {
	case report.Skipped:
		findings = append(findings, Finding{
			FilePath: path,
			Kind:     KindSkipped,
			Severity: SeverityWarning,
			Message:  "rewrite skipped: " + report.SkipReason,
		})
	case report.Modified && !report.Written:
		findings = append(findings, unformatted(path, report.Diff))
	}

	return findings
}

func unformatted(path string, diff *verify.Diff) Finding {
	f := Finding{
		FilePath: path,
		Kind:     KindUnformatted,
		Severity: SeverityWarning,
		Message:  "file is not formatted",
	}
	if diff != nil {
		f.Line, f.Column = diff.Line, diff.Column
		f.Message = fmt.Sprintf("file is not formatted (+%d -%d)", diff.Additions, diff.Deletions)
	}
	return f
}

// buildByKind constructs the ByKind slice from the context.
func (ctx *analysisContext) buildByKind(opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(ctx.kindMap))
	for kind, ka := range ctx.kindMap {
		for f := range ctx.kindFiles[kind] {
			ka.Files = append(ka.Files, f)
		}
		slices.Sort(ka.Files)
		result = append(result, *ka)
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// buildByFile constructs the ByFile slice from the context.
func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Findings == 0 {
			continue
		}
		for k := range ctx.fileKinds[path] {
			fa.Kinds = append(fa.Kinds, string(k))
		}
		slices.Sort(fa.Kinds)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze processes runner results into a Report.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.getOrCreateFileAnalysis(displayPath)
		if r := file.Report; r != nil {
			fa.Marks = r.Marks
			fa.ResidueChars = r.ResidueChars
			report.Totals.Marks += r.Marks
			report.Totals.Bytes += r.Bytes
			report.Totals.ResidueChars += r.ResidueChars
		}

		findings := FileFindings(displayPath, file)
		if len(findings) > 0 {
			report.Totals.FilesWithFindings++
		}

		for _, finding := range findings {
			report.Totals.Findings++
			countSeverity(finding.Severity, &report.Totals.Errors, &report.Totals.Warnings, &report.Totals.Infos)

			fa.Findings++
			countSeverity(finding.Severity, &fa.Errors, &fa.Warnings, &fa.Infos)
			ctx.fileKinds[displayPath][finding.Kind] = true

			ka := ctx.getOrCreateKindAnalysis(finding.Kind)
			ka.Findings++
			countSeverity(finding.Severity, &ka.Errors, &ka.Warnings, &ka.Infos)
			ctx.kindFiles[finding.Kind][displayPath] = true

			if opts.IncludeFindings {
				report.Findings = append(report.Findings, finding)
			}
		}
	}

	if opts.IncludeByKind {
		report.ByKind = ctx.buildByKind(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

// sortKindAnalysis sorts kind analysis by the specified field.
func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(kinds, func(left, right KindAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Kind, right.Kind)
		case SortBySeverity:
			return cmp.Or(
				cmp.Compare(right.Errors, left.Errors),
				cmp.Compare(right.Warnings, left.Warnings),
				cmp.Compare(right.Findings, left.Findings),
				cmp.Compare(left.Kind, right.Kind),
			)
		default: // SortByCount
			result := cmp.Compare(left.Findings, right.Findings)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Kind, right.Kind))
		}
	})
}

// sortFileAnalysis sorts file analysis by the specified field.
func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			return cmp.Or(
				cmp.Compare(right.Errors, left.Errors),
				cmp.Compare(right.Warnings, left.Warnings),
				cmp.Compare(right.Findings, left.Findings),
				cmp.Compare(left.Path, right.Path),
			)
		default: // SortByCount
			result := cmp.Compare(left.Findings, right.Findings)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		}
	})
}
