package cmd

import (
	"fmt"
	"strings"

	"recipe-exporter/core/storage"
	"recipe-exporter/feature/export"

	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read the output directory back and report row counts",
	Long:  `Opens every table written by convert, prints its row count and checks the counts recorded in _meta.json.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		result, err := export.Inspect(cmd.Context(), client)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "=== %s ===\n", result.Dir)
		fmt.Fprintf(w, "Generated At: %s\n", rawOrNull(result.Meta.GeneratedAt))
		fmt.Fprintf(w, "Minecraft: %s\n", rawOrNull(result.Meta.Minecraft))
		fmt.Fprintf(w, "Mod: %s\n", rawOrNull(result.Meta.Mod))
		for _, c := range result.Counts {
			fmt.Fprintf(w, "%-14s %d\n", c.Table, c.Rows)
		}

		if len(result.Mismatch) > 0 {
			return fmt.Errorf("output does not match %s: %s", export.MetaFile, strings.Join(result.Mismatch, "; "))
		}
		return nil
	},
}

func rawOrNull(raw []byte) string {
	if len(raw) == 0 {
		return "null"
	}
	return string(raw)
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}
