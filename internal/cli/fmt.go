package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/config"
	"github.com/yaklabco/mdparsec/pkg/fsutil"
	"github.com/yaklabco/mdparsec/pkg/reporter"
	"github.com/yaklabco/mdparsec/pkg/runner"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

type fmtFlags struct {
	write        bool
	check        bool
	diff         bool
	bullet       string
	headingSpace bool
	finalNewline bool
	backup       bool
	ignore       []string
	jobs         int
}

const fmtLongDescription = `Normalise Markdown files.

The document is parsed and printed back with a few rewrites applied;
everything else is reproduced byte for byte. A rewrite that would change
the block structure of a file is abandoned and reported.

Rewrites:
  --bullet         use one marker for every unordered list item
  --heading-space  insert the missing space in headings like "#Title"
  --final-newline  end every file with exactly one newline

With no paths, or with "-", the document is read from standard input and
the result written to standard output. With paths and none of --write,
--check or --diff, the normalised files are printed.`

const fmtExamples = `  mdparsec fmt README.md               # Print the normalised file
  mdparsec fmt --write docs/           # Rewrite files in place
  mdparsec fmt --check                 # Exit 2 if any file would change
  mdparsec fmt --diff --bullet '-' .   # Show what would change`

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:     "fmt [paths...]",
		Short:   "Normalise Markdown files",
		Long:    fmtLongDescription,
		Example: fmtExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write result to the source files")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit with status 2 if any file would change")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a diff instead of the normalised content")
	cmd.Flags().StringVar(&flags.bullet, "bullet", "", "marker for unordered list items: -, *, +")
	cmd.Flags().BoolVar(&flags.headingSpace, "heading-space", true, "insert the missing space after heading hashes")
	cmd.Flags().BoolVar(&flags.finalNewline, "final-newline", true, "end files with exactly one newline")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a copy of each file before rewriting it")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")

	return cmd
}

// fmtConfig collects the flags the user set into a CLI config layer.
func fmtConfig(cmd *cobra.Command, flags *fmtFlags) *config.Config {
	cfg := &config.Config{}
	if cmd.Flags().Changed("bullet") {
		cfg.Fmt.Bullet = flags.bullet
	}
	if cmd.Flags().Changed("heading-space") {
		cfg.Fmt.HeadingSpace = config.Bool(flags.headingSpace)
	}
	if cmd.Flags().Changed("final-newline") {
		cfg.Fmt.FinalNewline = config.Bool(flags.finalNewline)
	}
	if cmd.Flags().Changed("backup") {
		cfg.Fmt.Backups.Enabled = config.Bool(flags.backup)
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	cfg.Ignore = flags.ignore
	return cfg
}

// normalizeOptions resolves the rewrites from the merged configuration.
func normalizeOptions(cfg *config.Config) verify.NormalizeOptions {
	defaults := verify.DefaultNormalizeOptions()
	return verify.NormalizeOptions{
		Bullet:       cfg.Fmt.Bullet,
		HeadingSpace: config.BoolValue(cfg.Fmt.HeadingSpace, defaults.HeadingSpace),
		FinalNewline: config.BoolValue(cfg.Fmt.FinalNewline, defaults.FinalNewline),
	}
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	switch {
	case flags.write && flags.check:
		return fmt.Errorf("%w: --write and --check cannot be combined", ErrInvalidUsage)
	case flags.write && flags.diff:
		return fmt.Errorf("%w: --write and --diff cannot be combined", ErrInvalidUsage)
	}

	env, err := loadEnv(cmd, fmtConfig(cmd, flags))
	if err != nil {
		return err
	}

	rewrites := normalizeOptions(env.cfg)
	if err := rewrites.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	opts := verify.Options{
		Normalize:       true,
		Rewrites:        rewrites,
		Write:           flags.write,
		DryRun:          flags.diff || flags.check,
		Logger:          env.logger,
		Backup: fsutil.BackupConfig{
			Enabled: config.BoolValue(env.cfg.Fmt.Backups.Enabled, false),
			Suffix:  env.cfg.Fmt.Backups.Suffix,
		},
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == stdinName) {
		if flags.write {
			return fmt.Errorf("%w: --write needs file paths", ErrInvalidUsage)
		}
		return fmtStdin(cmd, env, flags, opts)
	}

	if !flags.write && !flags.check && !flags.diff {
		return fmtPrint(cmd, env, args, opts)
	}

	return fmtFiles(cmd, env, args, flags, opts)
}

// fmtStdin normalises standard input.
func fmtStdin(cmd *cobra.Command, env *commandEnv, flags *fmtFlags, opts verify.Options) error {
	content, err := readSource(cmd, stdinName)
	if err != nil {
		return err
	}

	report, err := verify.NewPipeline(opts).ProcessContent(env.ctx, "<stdin>", content)
	if err != nil {
		return err
	}
	if report.NotText {
		env.logger.Warn("input is not UTF-8 text, left unchanged", logging.FieldInput, "<stdin>")
	}
	if report.Skipped {
		env.logger.Warn("rewrite skipped", logging.FieldInput, "<stdin>", logging.FieldReason, report.SkipReason)
	}
	pending := report.Modified && !report.Skipped

	out := cmd.OutOrStdout()
	switch {
	case flags.check:
		if pending {
			fmt.Fprintln(cmd.ErrOrStderr(), "<stdin> is not formatted")
			return ErrUnformatted
		}
		return nil
	case flags.diff:
		if pending && report.Diff.HasChanges() {
			if _, err := io.WriteString(out, report.Diff.Unified); err != nil {
				return fmt.Errorf("write diff: %w", err)
			}
		}
		return nil
	case pending:
		_, err = out.Write(report.Formatted)
	default:
		_, err = out.Write(content)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// fmtPrint prints the normalised content of each named file.
func fmtPrint(cmd *cobra.Command, env *commandEnv, args []string, opts verify.Options) error {
	pipeline := verify.NewPipeline(opts)
	out := cmd.OutOrStdout()

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		report, err := pipeline.ProcessContent(env.ctx, path, content)
		if err != nil {
			return err
		}
		switch {
		case report.NotText:
			env.logger.Warn("file is not UTF-8 text, left unchanged", logging.FieldPath, path)
		case report.Modified && !report.Skipped:
			content = report.Formatted
		case report.Skipped:
			env.logger.Warn("rewrite skipped", logging.FieldPath, path, logging.FieldReason, report.SkipReason)
		}
		if _, err := out.Write(content); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// fmtFiles runs the pipeline over every discovered file and reports what
// changed, what would change or the diffs.
func fmtFiles(cmd *cobra.Command, env *commandEnv, args []string, flags *fmtFlags, opts verify.Options) error {
	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: env.workDir,
		Extensions: env.cfg.Extensions,
		Exclude:    env.cfg.Ignore,
		Jobs:       env.cfg.Jobs,
	}

	env.logger.Debug("starting fmt run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldWrite, flags.write,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(verify.NewPipeline(opts)).Run(env.ctx, runOpts)
	if err != nil {
		return runError("fmt", err)
	}

	env.logger.Debug("fmt run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)

	format := reporter.FormatText
	if flags.diff {
		format = reporter.FormatDiff
	}
	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       env.color(),
		ShowSummary: true,
		GroupByFile: true,
		WorkingDir:  env.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(env.ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	var errs []error
	if result.Stats.FilesErrored > 0 {
		errs = append(errs, ErrFilesErrored)
	}
	if flags.check && result.Stats.FilesModified > result.Stats.FilesSkipped {
		errs = append(errs, ErrUnformatted)
	}
	return errors.Join(errs...)
}
