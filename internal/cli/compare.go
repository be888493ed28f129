package cli

import (
	"github.com/spf13/cobra"
)

const compareLongDescription = `Compare the block structure mdparsec finds with goldmark's.

Both parsers read every file; their trees are reduced to block outlines
(one line per block with its kind and nesting) and aligned. Each run of
lines where the outlines disagree is reported with the source line it
starts on. Round-trip failures are reported as well.`

const compareExamples = `  mdparsec compare                         # Compare current directory
  mdparsec compare --flavor commonmark     # Use goldmark without GFM
  mdparsec compare --format summary docs/  # Counts per kind and file`

func newCompareCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "compare [paths...]",
		Short:   "Compare block structure with the goldmark parser",
		Long:    compareLongDescription,
		Example: compareExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags, true)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}
