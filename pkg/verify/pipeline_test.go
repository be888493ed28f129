package verify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/fsutil"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

const sample = "# Title\n\nSome *text* here.\n\n- a\n- b\n"

func TestPipeline_ProcessContent_Check(t *testing.T) {
	t.Parallel()

	p := verify.NewPipeline(verify.Options{Logger: logging.Discard()})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "doc.md", report.Path)
	assert.Equal(t, len(sample), report.Bytes)
	assert.True(t, report.RoundTrip)
	assert.Nil(t, report.RoundTripDiff)
	assert.Positive(t, report.Marks)
	assert.Zero(t, report.ResidueChars)
	assert.Empty(t, report.Mismatches)
	assert.False(t, report.Modified)
	assert.False(t, report.Failed())
	assert.Equal(t, "ok", report.Summary())
}

func TestPipeline_ProcessContent_Compare(t *testing.T) {
	t.Parallel()

	p := verify.NewPipeline(verify.Options{Compare: true, Flavor: "gfm", Logger: logging.Discard()})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte(sample))
	require.NoError(t, err)
	assert.Empty(t, report.Mismatches, "simple documents agree with goldmark")
	assert.False(t, report.Failed())
}

func TestPipeline_ProcessContent_CompareDisagreement(t *testing.T) {
	t.Parallel()

	// goldmark reads the second line as a lazy continuation of the quote,
	// mdparsec does not.
	source := "> quoted\nlazy\n"

	p := verify.NewPipeline(verify.Options{Compare: true, Logger: logging.Discard()})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte(source))
	require.NoError(t, err)
	assert.True(t, report.RoundTrip)
	assert.NotEmpty(t, report.Mismatches)
	assert.True(t, report.Failed())
	assert.Contains(t, report.Summary(), "structure mismatches")
}

func TestPipeline_ProcessContent_DetectLanguages(t *testing.T) {
	t.Parallel()

	source := "```\npackage main\n\nfunc main() {}\n```\n"

	p := verify.NewPipeline(verify.Options{DetectLanguages: true, Logger: logging.Discard()})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, 1, report.LanguagesDetected)
}

func TestPipeline_ProcessContent_DryRun(t *testing.T) {
	t.Parallel()

	p := verify.NewPipeline(verify.Options{
		Normalize: true,
		Rewrites:  verify.NormalizeOptions{Bullet: "-", HeadingSpace: true, FinalNewline: true},
		DryRun:    true,
		Logger:    logging.Discard(),
	})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte("#Title\n\n* a\n* b"))
	require.NoError(t, err)

	assert.True(t, report.Modified)
	assert.False(t, report.Skipped)
	assert.Equal(t, "# Title\n\n- a\n- b\n", string(report.Formatted))
	require.NotNil(t, report.Diff)
	assert.Equal(t, 1, report.Diff.Line)
	assert.Equal(t, "changes pending", report.Summary())
}

func TestPipeline_ProcessContent_NothingToNormalize(t *testing.T) {
	t.Parallel()

	p := verify.NewPipeline(verify.Options{Normalize: true, Rewrites: verify.DefaultNormalizeOptions()})
	report, err := p.ProcessContent(context.Background(), "doc.md", []byte(sample))
	require.NoError(t, err)
	assert.False(t, report.Modified)
	assert.Nil(t, report.Formatted)
}

func TestPipeline_ProcessContent_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := verify.NewPipeline(verify.Options{}).ProcessContent(ctx, "doc.md", []byte(sample))
	require.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_ProcessContent_InvalidUTF8(t *testing.T) {
	t.Parallel()

	content := []byte("# Title\n\nbad \xff\xfe bytes\n")

	p := verify.NewPipeline(verify.Options{
		Compare:   true,
		Normalize: true,
		Rewrites:  verify.DefaultNormalizeOptions(),
		Logger:    logging.Discard(),
	})
	report, err := p.ProcessContent(context.Background(), "doc.md", content)
	require.NoError(t, err)

	assert.True(t, report.NotText)
	assert.Equal(t, len(content), report.Bytes)
	assert.Nil(t, report.RoundTripDiff, "invalid bytes are not a round-trip failure")
	assert.Empty(t, report.Mismatches)
	assert.False(t, report.Modified)
	assert.False(t, report.Failed())
	assert.Equal(t, "not UTF-8 text", report.Summary())
}

func TestPipeline_ProcessFile_Write(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("* a\n* b\n"), 0o600))

	p := verify.NewPipeline(verify.Options{
		Normalize: true,
		Rewrites:  verify.NormalizeOptions{Bullet: "-"},
		Write:     true,
		Backup:    fsutil.BackupConfig{Enabled: true},
		Logger:    logging.Discard(),
	})
	report, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, report.Written)
	assert.True(t, report.BackupCreated)
	assert.Equal(t, "formatted (backup created)", report.Summary())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(got))

	backup, err := os.ReadFile(path + fsutil.DefaultBackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, "* a\n* b\n", string(backup))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm(), "mode is preserved")
}

func TestPipeline_ProcessFile_WithoutWriteLeavesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("#Title\n"), 0o644))

	p := verify.NewPipeline(verify.Options{Normalize: true, Rewrites: verify.DefaultNormalizeOptions()})
	report, err := p.ProcessFile(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, report.Modified)
	assert.False(t, report.Written)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#Title\n", string(got))
}

func TestPipeline_ProcessFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := verify.NewPipeline(verify.Options{}).ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.md"))
	require.ErrorIs(t, err, verify.ErrFileNotFound)
}

func TestReport_Failed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report *verify.Report
		want   bool
	}{
		{name: "nil", report: nil, want: false},
		{name: "ok", report: &verify.Report{RoundTrip: true}, want: false},
		{name: "round trip", report: &verify.Report{RoundTrip: false}, want: true},
		{name: "residue lenient", report: &verify.Report{RoundTrip: true, ResidueChars: 3}, want: false},
		{name: "residue strict", report: &verify.Report{RoundTrip: true, ResidueChars: 3, Strict: true}, want: true},
		{name: "mismatch", report: &verify.Report{RoundTrip: true, Mismatches: []verify.Mismatch{{Line: 1}}}, want: true},
		{name: "not text", report: &verify.Report{NotText: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.report.Failed())
		})
	}
}
