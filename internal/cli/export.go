package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/services"
)

func exportLuaIndexCommand(app *App) *cobra.Command {
	var (
		output string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "export-lua-index",
		Short: "Write a Lua chord index consumable by the ReaScript browser panel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter := services.NewLuaExporter(app.Analyzer)

			if output == "-" {
				return exporter.Export(cmd.OutOrStdout(), app.Collection, limit)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := exporter.Export(f, app.Collection, limit); err != nil {
				return fmt.Errorf("failed to write lua index: %w", err)
			}

			logger.Info("Lua index written", logger.Fields{
				"output": output,
				"limit":  limit,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "chord_index.lua", "Output file, or - for stdout")
	cmd.Flags().IntVar(&limit, "limit", services.DefaultLuaExportLimit, "Maximum progressions to index")

	return cmd
}
