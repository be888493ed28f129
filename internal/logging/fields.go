// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldReason     = "reason"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldFormat = "format"
	FieldWrite  = "write"
	FieldJobs   = "jobs"

	// Parser fields.
	FieldIterations = "iterations"
	FieldPosition   = "position"
	FieldRawChars   = "raw_chars"
	FieldNodes      = "nodes"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"
	FieldFilesWithRaw    = "files_with_raw"
	FieldFilesModified   = "files_modified"
	FieldMismatches      = "mismatches"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Language detection fields.
	FieldLanguage = "language"
)
