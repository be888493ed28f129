package analysis

import "time"

// Report contains pre-computed views of check results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Findings is the flat list for detailed output.
	Findings []Finding `json:"findings,omitempty"`

	// ByFile groups findings by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind groups findings by kind.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// Kind classifies a finding.
type Kind string

const (
	// KindError is a file that could not be processed.
	KindError Kind = "error"
	// KindRoundTrip is a document that does not reproduce its source.
	KindRoundTrip Kind = "round-trip"
	// KindMismatch is a block structure disagreement with the reference parser.
	KindMismatch Kind = "structure-mismatch"
	// KindResidue is input the grammar could only keep as residue.
	KindResidue Kind = "residue"
	// KindUnformatted is a file fmt would change.
	KindUnformatted Kind = "unformatted"
	// KindSkipped is a rewrite that was abandoned.
	KindSkipped Kind = "skipped"
	// KindNotText is a file that is not valid UTF-8 and was not parsed.
	KindNotText Kind = "not-text"
)

// Finding is a single problem found in a file.
type Finding struct {
	FilePath string `json:"filePath"`
	Kind     Kind   `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`

	// Want and Got hold the outline lines of a structure mismatch.
	Want []string `json:"want,omitempty"`
	Got  []string `json:"got,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files             int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	Findings          int `json:"totalFindings"`
	Errors            int `json:"errors"`
	Warnings          int `json:"warnings"`
	Infos             int `json:"infos"`
	Marks             int `json:"marks"`
	Bytes             int `json:"bytes"`
	ResidueChars      int `json:"residueChars"`
}

// HasFindings returns true if there are any findings.
func (t Totals) HasFindings() bool {
	return t.Findings > 0
}

// HasErrors returns true if there are any errors.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path         string   `json:"path"`
	Findings     int      `json:"findings"`
	Errors       int      `json:"errors"`
	Warnings     int      `json:"warnings"`
	Infos        int      `json:"infos"`
	Marks        int      `json:"marks"`
	ResidueChars int      `json:"residueChars"`
	Kinds        []string `json:"kinds,omitempty"`
}

// KindAnalysis contains aggregated data for a single kind of finding.
type KindAnalysis struct {
	Kind     Kind     `json:"kind"`
	Findings int      `json:"findings"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Files    []string `json:"files,omitempty"`
}
