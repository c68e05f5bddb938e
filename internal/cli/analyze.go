package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func analyzeCommand(app *App) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one progression: chord labels, complexity, patterns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			analysis, err := app.Engine.Analyze(id)
			if err != nil {
				return err
			}
			app.Metrics.RecordQuery("analyze", 1, time.Since(start))

			return printJSON(cmd.OutOrStdout(), analysis)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Progression id (zero-based collection index)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
