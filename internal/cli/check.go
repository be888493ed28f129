package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/config"
	"github.com/yaklabco/mdparsec/pkg/reporter"
	"github.com/yaklabco/mdparsec/pkg/runner"
	"github.com/yaklabco/mdparsec/pkg/verify"
)

// checkFlags holds the flags shared by check and compare.
type checkFlags struct {
	format          string
	flavor          string
	ignore          []string
	jobs            int
	strict          bool
	compare         bool
	detectLanguages bool
	noContext       bool
	compact         bool
	perFile         bool
	summaryOrder    string
}

const checkLongDescription = `Verify that Markdown files round-trip through the parser.

Every file is parsed and printed back from its tree; the output must equal
the source byte for byte. With --strict, input the grammar could only keep
as residue fails the check too. With --compare, the block structure is also
checked against the goldmark parser.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Specify paths to check specific files or directories.`

const checkExamples = `  mdparsec check                     # Check current directory
  mdparsec check docs/               # Check docs directory
  mdparsec check --strict README.md  # Fail on residue as well
  mdparsec check --compare           # Compare with goldmark too
  mdparsec check --format json       # Output as JSON for CI`

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Short:   "Verify that Markdown files round-trip",
		Long:    checkLongDescription,
		Example: checkExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.compare, "compare", false, "compare block structure with goldmark")

	return cmd
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText),
		"output format: text, table, json, diff, summary")
	cmd.Flags().StringVar(&flags.flavor, "flavor", string(config.FlavorGFM),
		"goldmark flavor used by --compare: commonmark, gfm")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat residue as a failure")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false,
		"guess the language of code blocks without an info string")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "output separate report for each file (table format)")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", string(reporter.SummaryOrderKinds),
		"order of tables in summary output: kinds, files")
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	return runVerify(cmd, args, flags, flags.compare)
}

// checkConfig collects the flags the user set into a CLI config layer.
func checkConfig(cmd *cobra.Command, flags *checkFlags) *config.Config {
	cfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Compare.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = config.Bool(flags.strict)
	}
	if cmd.Flags().Changed("detect-languages") {
		cfg.DetectLanguages = config.Bool(flags.detectLanguages)
	}
	cfg.Ignore = flags.ignore
	return cfg
}

// runVerify runs the read-only pipeline over args and reports the result.
func runVerify(cmd *cobra.Command, args []string, flags *checkFlags, compare bool) error {
	if _, err := reporter.ParseFormat(flags.format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	summaryOrder := reporter.SummaryOrder(flags.summaryOrder)
	if summaryOrder != reporter.SummaryOrderKinds && summaryOrder != reporter.SummaryOrderFiles {
		return fmt.Errorf("%w: unknown summary order %q; valid orders: kinds, files",
			ErrInvalidUsage, flags.summaryOrder)
	}

	env, err := loadEnv(cmd, checkConfig(cmd, flags))
	if err != nil {
		return err
	}
	cfg := env.cfg

	// The config file may choose the format; it was validated on load.
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	strict := cfg.StrictEnabled()
	pipeline := verify.NewPipeline(verify.Options{
		Strict:          strict,
		Compare:         compare,
		Flavor:          string(cfg.Compare.Flavor),
		DetectLanguages: cfg.DetectLanguagesEnabled(),
		Logger:          env.logger,
	})

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: env.workDir,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Ignore,
		Jobs:       cfg.Jobs,
	}

	env.logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFlavor, cfg.Compare.Flavor,
	)

	result, err := runner.New(pipeline).Run(env.ctx, runOpts)
	if err != nil {
		return runError("check", err)
	}

	env.logger.Debug("check run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldFilesWithRaw, result.Stats.FilesWithResidue,
		logging.FieldMismatches, result.Stats.Mismatches,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        env.color(),
		ShowContext:  !flags.noContext,
		ShowSummary:  true,
		GroupByFile:  true,
		Compact:      flags.compact,
		PerFile:      flags.perFile,
		SummaryOrder: summaryOrder,
		WorkingDir:   env.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(env.ctx, result); err != nil {
		env.logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return ResultError(result, strict)
}

// runError wraps a failed run. Paths that do not exist are a usage error.
func runError(command string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	return errors.Join(fmt.Errorf("%s run failed", command), err)
}
