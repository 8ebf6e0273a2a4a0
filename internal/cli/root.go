// Package cli implements the griptip command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/griptip/internal/config"
	"github.com/JonMunkholm/griptip/internal/core"
	"github.com/JonMunkholm/griptip/internal/logging"
	"github.com/JonMunkholm/griptip/internal/observability"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

var (
	configPath string
	inputPath  string
	outputPath string

	cfg     *config.Config
	metrics = observability.NewMetrics()
)

var rootCmd = &cobra.Command{
	Use:   "griptip",
	Short: "Convert the grip wax product sheet to JSON",
	Long: `griptip reads the grip wax product sheet (CSV, comma or semicolon
separated) and writes the normalized product document used by the app.

Without a subcommand it runs a single conversion.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runConvert,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML config file")
	flags.StringVarP(&inputPath, "input", "i", "", "CSV sheet to read (overrides GRIPTIP_INPUT)")
	flags.StringVarP(&outputPath, "output", "o", "", "JSON file to write (overrides GRIPTIP_OUTPUT)")
}

// Execute runs the root command. A failure with a known error code is also
// reported to stderr in plain words.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportError prints the user message for err. Errors without a catalogue
// entry are left to the caller's log line.
func reportError(w io.Writer, err error) {
	if core.MapError(err).Code == core.FallbackCode {
		return
	}
	fmt.Fprintf(w, "✘ %s\n", core.FormatUserError(err))
}

// loadConfig loads configuration, applies flag overrides and sets up logging.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		loaded.Pipeline.Input = inputPath
	}
	if outputPath != "" {
		loaded.Pipeline.Output = outputPath
	}
	cfg = loaded

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	slog.Debug("configuration loaded", "config", cfg.String())
	return nil
}

// skipConfig is a PersistentPreRunE for commands that need no configuration.
func skipConfig(*cobra.Command, []string) error {
	return nil
}

// convertOnce runs one file conversion and records it.
func convertOnce(ctx context.Context, source string) (core.Stats, error) {
	ctx, _ = logging.WithRun(ctx, source)
	logger := logging.WithFields(ctx, "input", cfg.Pipeline.Input, "output", cfg.Pipeline.Output)

	start := time.Now()
	stats, err := core.ConvertFile(ctx, cfg.Pipeline.Input, cfg.Pipeline.Output, cfg.Pipeline.MaxFileSize)
	metrics.RecordRun(source, stats, time.Since(start), err)
	if err != nil {
		return core.Stats{}, err
	}

	if len(stats.MissingColumns) > 0 {
		logger.Warn("sheet is missing expected columns", "columns", stats.MissingColumns)
	}
	logger.Debug("conversion finished",
		"rows", stats.RowsRead,
		"blank", stats.BlankRows,
		"inactive", stats.InactiveRows,
		"products", stats.Products,
		"delimiter", string(stats.Delimiter),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return stats, nil
}

func printSummary(cmd *cobra.Command, stats core.Stats) {
	fmt.Fprintf(cmd.OutOrStdout(), "✔ Wrote %s with %d active products.\n", cfg.Pipeline.Output, stats.Products)
}
