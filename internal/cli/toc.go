package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/pkg/export"
	"github.com/yaklabco/mdparsec/pkg/mark"
)

// maxHeadingLevel is the deepest ATX heading level.
const maxHeadingLevel = 6

type tocFlags struct {
	links    bool
	minLevel int
	maxLevel int
}

func newTocCommand() *cobra.Command {
	flags := &tocFlags{}

	cmd := &cobra.Command{
		Use:   "toc [file]",
		Short: "Print a table of contents",
		Long: `Print the headings of a Markdown document as a nested list.

Nesting follows the heading levels, relative to the shallowest level
listed. With --links, every entry links to the anchor of its heading.`,
		Example: `  mdparsec toc README.md
  mdparsec toc --links --max-level 3 docs/guide.md
  cat notes.md | mdparsec toc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToc(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.links, "links", false, "link entries to heading anchors")
	cmd.Flags().IntVar(&flags.minLevel, "min-level", 1, "shallowest heading level to list")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", maxHeadingLevel, "deepest heading level to list")

	return cmd
}

func runToc(cmd *cobra.Command, args []string, flags *tocFlags) error {
	switch {
	case flags.minLevel < 1 || flags.minLevel > maxHeadingLevel:
		return fmt.Errorf("%w: --min-level must be between 1 and %d", ErrInvalidUsage, maxHeadingLevel)
	case flags.maxLevel < 1 || flags.maxLevel > maxHeadingLevel:
		return fmt.Errorf("%w: --max-level must be between 1 and %d", ErrInvalidUsage, maxHeadingLevel)
	case flags.minLevel > flags.maxLevel:
		return fmt.Errorf("%w: --min-level %d is greater than --max-level %d",
			ErrInvalidUsage, flags.minLevel, flags.maxLevel)
	}

	env, err := loadEnv(cmd, nil)
	if err != nil {
		return err
	}

	name := stdinName
	if len(args) == 1 {
		name = args[0]
	}
	source, err := readSource(cmd, name)
	if err != nil {
		return err
	}

	doc := mark.ParseWithOptions(string(source), mark.Options{Logger: env.logger})
	entries := mark.Outline(doc)
	env.logger.Debug("collected headings", logging.FieldInput, name, logging.FieldNodes, len(entries))

	toc := export.TOC(entries, export.TOCOptions{
		MinLevel: flags.minLevel,
		MaxLevel: flags.maxLevel,
		Links:    flags.links,
	})
	if _, err := io.WriteString(cmd.OutOrStdout(), toc); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
