// Package verify runs mdparsec's per-file work: parse, check that the
// document reproduces its source, compare its block structure with the
// goldmark reference parser and optionally rewrite the file normalised.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/fsutil"
	"github.com/yaklabco/mdparsec/pkg/langdetect"
	"github.com/yaklabco/mdparsec/pkg/mark"
	"github.com/yaklabco/mdparsec/pkg/mdast"
	"github.com/yaklabco/mdparsec/pkg/parser/goldmark"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Options controls what the pipeline does with each file.
type Options struct {
	// Strict makes residue (input the grammar gave up on) a failure.
	Strict bool

	// Compare parses every file with goldmark as well and records where
	// the block outlines disagree.
	Compare bool

	// Flavor is the goldmark flavor used by Compare.
	Flavor string

	// DetectLanguages guesses the language of unlabelled code blocks.
	DetectLanguages bool

	// Normalize enables rewriting. Without it the pipeline only reads.
	Normalize bool

	// Rewrites selects what Normalize changes.
	Rewrites NormalizeOptions

	// Write stores normalised content back to disk.
	Write bool

	// DryRun records a diff of the normalised content instead of writing.
	DryRun bool

	// Backup configures backups taken before writing.
	Backup fsutil.BackupConfig

	// Logger receives parser diagnostics, tagged with the file path. Nil
	// means the logger attached to the context.
	Logger *log.Logger
}

// Report is the outcome of running the pipeline on one file.
type Report struct {
	// Path is the file path that was processed.
	Path string

	// Bytes is the size of the source.
	Bytes int

	// Marks is the number of nodes in the parsed document, nested ones included.
	Marks int

	// ResidueChars is the number of characters the grammar left as residue.
	ResidueChars int

	// RoundTrip is true when the document reproduces the source exactly.
	RoundTrip bool

	// RoundTripDiff shows where it does not. Nil when RoundTrip is true.
	RoundTripDiff *Diff

	// Mismatches lists where the block outline differs from goldmark's.
	Mismatches []Mismatch

	// LanguagesDetected counts code blocks whose language was guessed.
	LanguagesDetected int

	// Modified is true if normalising changed the content.
	Modified bool

	// Formatted is the normalised content. Nil unless Modified.
	Formatted []byte

	// Diff is the normalisation diff in dry-run mode.
	Diff *Diff

	// Skipped is true if the rewrite was abandoned.
	Skipped bool

	// SkipReason explains why the rewrite was abandoned.
	SkipReason string

	// BackupCreated is true if a backup was created before writing.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// Strict records whether residue counts as a failure.
	Strict bool

	// NotText is true when the content is not valid UTF-8. Such files are
	// neither parsed nor rewritten, and no other field is filled in.
	NotText bool
}

// Failed reports whether the file fails verification: it does not round
// trip, it disagrees with the reference parser, or it left residue under
// strict mode.
func (r *Report) Failed() bool {
	if r == nil || r.NotText {
		return false
	}
	return !r.RoundTrip || len(r.Mismatches) > 0 || (r.Strict && r.ResidueChars > 0)
}

// Summary returns a short human-readable status.
func (r *Report) Summary() string {
	switch {
	case r == nil:
		return ""
	case r.NotText:
		return "not UTF-8 text"
	case !r.RoundTrip:
		return "round trip failed at " + r.RoundTripDiff.Location()
	case len(r.Mismatches) > 0:
		return fmt.Sprintf("%d structure mismatches", len(r.Mismatches))
	case r.Strict && r.ResidueChars > 0:
		return fmt.Sprintf("%d residue characters", r.ResidueChars)
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written && r.BackupCreated:
		return "formatted (backup created)"
	case r.Written:
		return "formatted"
	case r.Modified:
		return "changes pending"
	default:
		return "ok"
	}
}

// Pipeline processes single files.
type Pipeline struct {
	opts      Options
	reference *goldmark.Parser
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts Options) *Pipeline {
	p := &Pipeline{opts: opts}
	if opts.Compare {
		p.reference = goldmark.New(opts.Flavor)
	}
	return p
}

// ProcessFile runs the pipeline for the file at path.
//
// The pipeline performs the following steps:
//  1. Read and hash the file.
//  2. Parse it and check the round trip.
//  3. Compare block structure with goldmark (if enabled).
//  4. Normalise and re-parse to make sure structure is unchanged (if enabled).
//  5. Generate a diff (dry run) or check for concurrent modification,
//     take a backup and write atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*Report, error) {
	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	report, err := p.ProcessContent(ctx, path, content)
	if err != nil {
		return nil, err
	}

	if !report.Modified || report.Skipped || !p.opts.Write || p.opts.DryRun {
		return report, nil
	}

	changed, err := snap.Changed(ctx)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if changed {
		report.Skipped = true
		report.SkipReason = "file modified during processing"
		return report, nil
	}

	if p.opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, p.opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		report.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, report.Formatted, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	report.Written = true

	return report, nil
}

// ProcessContent runs the pipeline on content already in memory. It never
// writes; Write only affects ProcessFile.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	report := &Report{
		Path:   path,
		Bytes:  len(content),
		Strict: p.opts.Strict,
	}

	if !utf8.Valid(content) {
		report.NotText = true
		return report, nil
	}

	logger := p.fileLogger(ctx, path)
	source := string(content)
	doc := mark.ParseWithOptions(source, mark.Options{Logger: logger, Context: ctx})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing cancelled: %w", err)
	}

	mark.WalkDocument(doc, func(mark.Mark) bool {
		report.Marks++
		return true
	})
	if residue, ok := doc.Residue(); ok {
		report.ResidueChars = residue.Value.Len()
	}

	stringified := doc.Stringify()
	report.RoundTrip = stringified == source
	if !report.RoundTrip {
		report.RoundTripDiff = NewDiff(path, source, stringified)
	}

	var tree *mdast.Node
	if p.opts.Compare || p.opts.DetectLanguages || p.opts.Normalize {
		tree = mark.Lower(doc)
	}

	if p.opts.DetectLanguages {
		report.LanguagesDetected = langdetect.Annotate(tree)
	}

	if p.opts.Compare {
		reference, err := p.reference.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("reference parse: %w", err)
		}
		report.Mismatches = CompareTrees(reference, tree)
	}

	if p.opts.Normalize {
		p.normalize(logger, path, source, doc, tree, report)
	}

	return report, nil
}

// normalize fills in the rewrite fields of report. A rewrite that would
// change the block structure of the document is abandoned.
func (p *Pipeline) normalize(logger *log.Logger, path, source string, doc mark.Document, tree *mdast.Node, report *Report) {
	formatted := Normalize(doc, p.opts.Rewrites)
	if formatted == source {
		return
	}
	report.Modified = true
	report.Formatted = []byte(formatted)

	if !report.RoundTrip {
		report.Skipped = true
		report.SkipReason = "the document does not round trip"
		return
	}

	reparsed := mark.ParseWithOptions(formatted, mark.Options{Logger: logger})
	before := mdast.BlockOutline(tree)
	after := mdast.BlockOutline(mark.Lower(reparsed))
	if len(CompareOutlines(before, after)) > 0 {
		report.Skipped = true
		report.SkipReason = "normalising would change the block structure"
		return
	}

	if p.opts.DryRun {
		report.Diff = NewDiff(path, source, formatted)
	}
}

func (p *Pipeline) fileLogger(ctx context.Context, path string) *log.Logger {
	if p.opts.Logger != nil {
		ctx = logging.WithLogger(ctx, p.opts.Logger)
	}
	return logging.ForFile(ctx, path)
}

// categorizeError wraps file system errors with pipeline error types.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
