package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdparsec/internal/cli"
	"github.com/yaklabco/mdparsec/internal/configloader"
	"github.com/yaklabco/mdparsec/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "round trip", err: cli.ErrRoundTripFailed, want: cli.ExitCheckFailed},
		{name: "mismatch", err: cli.ErrStructureMismatch, want: cli.ExitCheckFailed},
		{name: "unformatted", err: cli.ErrUnformatted, want: cli.ExitUnformatted},
		{name: "usage", err: fmt.Errorf("%w: bad flag", cli.ErrInvalidUsage), want: cli.ExitInvalidUsage},
		{name: "config", err: fmt.Errorf("%w: broken", cli.ErrConfig), want: cli.ExitConfigError},
		{
			name: "validation",
			err:  &configloader.ValidationError{Field: "jobs", Message: "must not be negative"},
			want: cli.ExitConfigError,
		},
		{name: "io beats check", err: errors.Join(cli.ErrRoundTripFailed, cli.ErrFilesErrored), want: cli.ExitIOError},
		{name: "other", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestIsReported(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsReported(cli.ErrRoundTripFailed))
	assert.True(t, cli.IsReported(cli.ErrUnformatted))
	assert.True(t, cli.IsReported(errors.Join(cli.ErrStructureMismatch, cli.ErrFilesErrored)))
	assert.False(t, cli.IsReported(cli.ErrInvalidUsage))
	assert.False(t, cli.IsReported(errors.New("boom")))
}

func TestResultError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stats  runner.Stats
		strict bool
		want   []error
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 3},
		},
		{
			name:  "round trip",
			stats: runner.Stats{FilesProcessed: 1, FilesFailed: 1, FilesRoundTripFailed: 1},
			want:  []error{cli.ErrRoundTripFailed},
		},
		{
			name:  "residue without strict",
			stats: runner.Stats{FilesProcessed: 1, FilesWithResidue: 1},
		},
		{
			name:   "residue with strict",
			stats:  runner.Stats{FilesProcessed: 1, FilesFailed: 1, FilesWithResidue: 1},
			strict: true,
			want:   []error{cli.ErrRoundTripFailed},
		},
		{
			name:  "mismatches and errors",
			stats: runner.Stats{FilesProcessed: 1, FilesErrored: 1, Mismatches: 2},
			want:  []error{cli.ErrFilesErrored, cli.ErrStructureMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cli.ResultError(&runner.Result{Stats: tt.stats}, tt.strict)
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}

	assert.NoError(t, cli.ResultError(nil, true))
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Stats: runner.Stats{FilesProcessed: 1, FilesWithResidue: 1}}
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(result, false))
	assert.Equal(t, cli.ExitCheckFailed, cli.ExitCodeFromResult(result, true))
}
