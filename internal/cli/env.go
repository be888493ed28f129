package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdparsec/internal/configloader"
	"github.com/yaklabco/mdparsec/internal/logging"
	"github.com/yaklabco/mdparsec/internal/ui/pretty"
	"github.com/yaklabco/mdparsec/pkg/config"
)

// commandEnv is what every command needs once flags are parsed.
type commandEnv struct {
	ctx     context.Context
	cfg     *config.Config
	workDir string
	logger  *log.Logger
}

// loadEnv resolves the configuration for cmd. cliCfg holds the values of
// the flags the user actually set; nil means none.
func loadEnv(cmd *cobra.Command, cliCfg *config.Config) (*commandEnv, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loadResult.Config

	if debug, _ := cmd.Flags().GetBool("debug"); !debug && cfg.LogLevel != "" {
		logging.SetLevel(cfg.LogLevel)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.Hints) > 0 {
		styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))
		for _, hint := range loadResult.Hints {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.Dim.Render("hint: "+hint))
		}
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return &commandEnv{
		ctx:     ctx,
		cfg:     cfg,
		workDir: workDir,
		logger:  logger,
	}, nil
}

// color returns the effective color mode.
func (e *commandEnv) color() string {
	if e.cfg.Color == "" {
		return string(config.ColorAuto)
	}
	return string(e.cfg.Color)
}
