package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/logger"
)

func statsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			stats, err := app.Engine.Stats()
			if err != nil {
				return err
			}
			app.Metrics.RecordQuery("stats", stats.TotalProgressions, time.Since(start))
			logger.LogQuery("stats", time.Since(start), logger.Fields{
				"total_progressions": stats.TotalProgressions,
			})

			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}
