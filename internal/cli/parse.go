package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/internal/ui/pretty"
	"github.com/yaklabco/mdparsec/pkg/config"
	"github.com/yaklabco/mdparsec/pkg/export"
	"github.com/yaklabco/mdparsec/pkg/fsutil"
	"github.com/yaklabco/mdparsec/pkg/mark"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// treeValueMargin is the room left for labels and guides when values are
// truncated to the terminal width.
const treeValueMargin = 40

type parseFlags struct {
	format          string
	compact         bool
	detectLanguages bool
	output          string
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse Markdown and print its syntax tree",
		Long: `Parse Markdown files and print the resulting syntax tree.

With no files, or with "-", the document is read from standard input.

Formats:
  tree      indented tree with source spans (default)
  json      JSON tree with positions
  yaml      YAML tree with positions
  markdown  the document printed back from its tree
  outline   heading outline as a nested list`,
		Example: `  mdparsec parse README.md
  mdparsec parse --format json --compact docs/guide.md
  cat notes.md | mdparsec parse --format yaml
  mdparsec parse --format json -o tree.json README.md`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", string(export.FormatTree),
		"output format: tree, json, yaml, markdown, outline")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON and tree output without spans")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", false,
		"guess the language of code blocks without an info string")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("detect-languages") {
		cliCfg.DetectLanguages = config.Bool(flags.detectLanguages)
	}

	env, err := loadEnv(cmd, cliCfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if flags.output != "" {
		out = &buf
	}

	opts := export.Options{
		Format:          format,
		Compact:         flags.compact,
		DetectLanguages: env.cfg.DetectLanguagesEnabled(),
	}
	if flags.output == "" {
		opts.Color = pretty.IsColorEnabled(env.color(), out)
		if width := terminalWidth(out); width > 0 {
			opts.ValueWidth = max(width-treeValueMargin, treeValueMargin)
		}
	}
	styles := pretty.NewStyles(opts.Color)

	for i, name := range args {
		source, err := readSource(cmd, name)
		if err != nil {
			return err
		}

		env.logger.Debug("parsing", logging.FieldInput, name, logging.FieldFormat, format)
		doc := mark.ParseWithOptions(string(source), mark.Options{Logger: env.logger})

		if len(args) > 1 {
			writeDocumentSeparator(out, styles, format, name, i)
		}
		if err := export.Write(out, doc, opts); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if flags.output == "" {
		return nil
	}

	written, err := fsutil.WriteIfChanged(env.ctx, flags.output, buf.Bytes(), fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if written {
		env.logger.Info("wrote output", logging.FieldOutput, flags.output)
	} else {
		env.logger.Debug("output unchanged", logging.FieldOutput, flags.output)
	}
	return nil
}

// writeDocumentSeparator introduces the i-th of several documents.
func writeDocumentSeparator(w io.Writer, styles *pretty.Styles, format export.Format, name string, i int) {
	switch format {
	case export.FormatYAML:
		fmt.Fprintf(w, "--- # %s\n", name)
	case export.FormatJSON, export.FormatMarkdown:
		// JSON documents concatenate as a stream; Markdown is printed as is.
	default:
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styles.FilePath.Render("==> "+name+" <=="))
	}
}

// readSource reads a named file, or standard input for "-".
func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == stdinName {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return content, nil
}

// terminalWidth returns the width of w if it is a terminal, otherwise 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
