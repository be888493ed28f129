// Package cli provides the Cobra command structure for mdparsec.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdparsec/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdparsec command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdparsec",
		Short: "A lossless Markdown parser and round-trip checker",
		Long: `mdparsec parses Markdown into a lossless syntax tree built from parser
combinators. Every delimiter is kept, so the tree prints back to exactly the
source it came from.

Use it to inspect how a document parses, to normalise Markdown without
touching anything else, to verify that whole trees of files round-trip, and
to compare the block structure it finds with the goldmark parser.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddGroup(commandGroups()...)
	addGrouped(rootCmd, groupInspect, newParseCommand(), newTocCommand())
	addGrouped(rootCmd, groupVerify, newCheckCommand(), newCompareCommand())
	addGrouped(rootCmd, groupRewrite, newFmtCommand())
	rootCmd.AddCommand(newInitCommand(), newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
