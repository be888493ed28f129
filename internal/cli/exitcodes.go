package cli

import (
	"errors"

	"github.com/yaklabco/mdparsec/internal/configloader"
	"github.com/yaklabco/mdparsec/pkg/runner"
)

// Exit codes for mdparsec.
const (
	// ExitSuccess indicates successful execution with no failures.
	ExitSuccess = 0

	// ExitCheckFailed indicates a file did not round trip, disagreed with
	// the reference parser, or left residue in strict mode.
	ExitCheckFailed = 1

	// ExitUnformatted indicates fmt --check found files to rewrite.
	ExitUnformatted = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors that only carry an outcome the command has already reported.
var (
	// ErrRoundTripFailed is returned when a document does not reproduce its
	// source, or leaves residue in strict mode.
	ErrRoundTripFailed = errors.New("round trip failed")

	// ErrStructureMismatch is returned when the block structure differs
	// from the reference parser's.
	ErrStructureMismatch = errors.New("block structure differs from reference parser")

	// ErrUnformatted is returned by fmt --check when files need rewriting.
	ErrUnformatted = errors.New("files need formatting")

	// ErrFilesErrored is returned when some files could not be processed.
	ErrFilesErrored = errors.New("some files could not be processed")
)

var (
	// ErrInvalidUsage marks flag combinations and values the commands reject.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks configuration that could not be loaded.
	ErrConfig = errors.New("configuration error")
)

// IsReported reports whether err only signals an outcome the command
// output already explains, so it should not be logged again.
func IsReported(err error) bool {
	return errors.Is(err, ErrRoundTripFailed) ||
		errors.Is(err, ErrStructureMismatch) ||
		errors.Is(err, ErrUnformatted) ||
		errors.Is(err, ErrFilesErrored)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesErrored):
		return ExitIOError
	case errors.Is(err, ErrRoundTripFailed), errors.Is(err, ErrStructureMismatch):
		return ExitCheckFailed
	case errors.Is(err, ErrUnformatted):
		return ExitUnformatted
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// ResultError returns the errors a check result signals, joined.
func ResultError(result *runner.Result, strict bool) error {
	if result == nil {
		return nil
	}

	var errs []error
	if result.Stats.FilesErrored > 0 {
		errs = append(errs, ErrFilesErrored)
	}
	if result.Stats.FilesRoundTripFailed > 0 || (strict && result.Stats.FilesWithResidue > 0) {
		errs = append(errs, ErrRoundTripFailed)
	}
	if result.Stats.Mismatches > 0 {
		errs = append(errs, ErrStructureMismatch)
	}
	return errors.Join(errs...)
}

// ExitCodeFromResult determines the exit code of a check result.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	return ExitCode(ResultError(result, strict))
}
