package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/drills/internal/config"
	"github.com/nao1215/drills/internal/log"
	"github.com/nao1215/drills/internal/report"
)

// addOutputFlags registers the report flags shared by the pipeline commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .drills in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getLogFormatFlag retrieves the log format from the command or its parent.
func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			return log.FormatText
		}
	}
	return format
}

// newLogger creates the stderr logger selected by the global flags.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := log.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return logger, nil
}

// loadConfig builds a Config from defaults and the configuration file, then
// applies the report flags. Command-specific flags are applied by the caller.
//
// If the user explicitly specified a config file path, a missing file is an
// error. Otherwise the defaults are used when no file is found.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	found := config.FindConfigFile(configPath)
	switch {
	case found != "":
		file, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		cfg.ApplyFile(file)
		cfg.ConfigFilePath = found
	case configPath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.LogFormat = getLogFormatFlag(cmd)

	return cfg, nil
}

// outputReport opens the report destination and hands the selected writer
// to write. Reports go to stdout unless a report file is configured.
func outputReport(cmd *cobra.Command, cfg *config.Config, write func(report.Writer) error) error {
	var output io.Writer = cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	w, err := report.NewWriter(
		report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport),
		output,
		report.Options{Version: getVersion(), Verbose: cfg.Verbose},
	)
	if err != nil {
		return err
	}

	return write(w)
}
