package cmd

import (
	"fmt"

	"recipe-exporter/core/logger"
	"recipe-exporter/core/storage"
	"recipe-exporter/feature/export"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the recipe dump into Parquet tables",
	Long: `Reads recipes.json and the optional machine_index.json, flattens them into seven
tables and writes <table>.parquet, _meta.json and datapackage.json to the output directory.
Existing output is overwritten.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()
	logg = logger.WithRunID(logg, uuid.NewString())

	client, err := storage.NewClient(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	svc := export.NewService(client, cfg.Input, logg)
	summary, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Parquet written to: %s\n", summary.Dir)
	return nil
}

func init() {
	RootCmd.AddCommand(convertCmd)
}
