package runner

import "github.com/yaklabco/mdparsec/pkg/verify"

// FileOutcome is the result for one file.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Report is nil when Error is set.
	Report *verify.Report

	// Error is set if the file could not be processed.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files processed without error.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesFailed is the number of files that failed verification.
	FilesFailed int

	// FilesRoundTripFailed is the number of files that did not round trip.
	FilesRoundTripFailed int

	// FilesWithResidue is the number of files with residue.
	FilesWithResidue int

	// FilesModified is the number of files normalising would change.
	FilesModified int

	// FilesWritten is the number of files written back.
	FilesWritten int

	// FilesSkipped is the number of files whose rewrite was abandoned.
	FilesSkipped int

	// FilesNotText is the number of files left alone because they are not
	// valid UTF-8.
	FilesNotText int

	// Mismatches is the total number of structure mismatches.
	Mismatches int

	// Marks is the total number of parsed nodes.
	Marks int

	// Bytes is the total size of the processed sources.
	Bytes int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed verification or could not
// be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesFailed > 0 || r.Stats.FilesErrored > 0
}

// HasMismatches reports whether any file disagreed with the reference parser.
func (r *Result) HasMismatches() bool {
	return r != nil && r.Stats.Mismatches > 0
}

// HasChanges reports whether normalising would change any file.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesModified > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	report := outcome.Report
	if report == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Bytes += report.Bytes
	if report.NotText {
		r.Stats.FilesNotText++
		return
	}
	r.Stats.Marks += report.Marks
	r.Stats.Mismatches += len(report.Mismatches)

	if report.Failed() {
		r.Stats.FilesFailed++
	}
	if !report.RoundTrip {
		r.Stats.FilesRoundTripFailed++
	}
	if report.ResidueChars > 0 {
		r.Stats.FilesWithResidue++
	}
	if report.Modified {
		r.Stats.FilesModified++
	}
	if report.Written {
		r.Stats.FilesWritten++
	}
	if report.Skipped {
		r.Stats.FilesSkipped++
	}
}
