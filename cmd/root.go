package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipe-exporter/core/config"
	"recipe-exporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFlag        string
	machineIndexFlag string
	outFlag          string
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it runs the conversion.
var RootCmd = &cobra.Command{
	Use:   "recipe-exporter",
	Short: "GTNH recipe dump to Parquet converter",
	Long: `Recipe Exporter converts the JSON dump written by the in-game recipe dumper
into normalized Parquet tables plus a datapackage.json describing them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadConfig loads configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input.RawJSONPath = inputFlag
	}
	if flags.Changed("machine-index") {
		cfg.Input.MachineIndexJSONPath = machineIndexFlag
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outFlag
	}
	return cfg, nil
}

func init() {
	RootCmd.PersistentFlags().StringVar(&inputFlag, "input", "", "Path to recipes.json (overrides RAW_JSON_PATH)")
	RootCmd.PersistentFlags().StringVar(&machineIndexFlag, "machine-index", "", "Path to machine_index.json (overrides MACHINE_INDEX_JSON_PATH)")
	RootCmd.PersistentFlags().StringVar(&outFlag, "out", "", "Output directory (overrides PARQUET_OUT_DIR)")
}
