package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/models"
)

func browseCommand(app *App) *cobra.Command {
	var (
		page      int
		items     int
		search    string
		minLength int
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the progression collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be >= 1, got %d", page)
			}
			if items < 1 {
				return fmt.Errorf("--items must be >= 1, got %d", items)
			}
			if minLength < 0 {
				return fmt.Errorf("--min-length must be >= 0, got %d", minLength)
			}

			start := time.Now()
			result := app.Engine.Browse(models.BrowseParams{
				Page:         page,
				ItemsPerPage: items,
				SearchQuery:  search,
				MinLength:    minLength,
			})
			app.Metrics.RecordQuery("browse", len(result.Progressions), time.Since(start))
			logger.LogQuery("browse", time.Since(start), logger.Fields{
				"page":        page,
				"total_items": result.TotalItems,
			})

			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&items, "items", 10, "Items per page")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive substring match on chord names")
	cmd.Flags().IntVar(&minLength, "min-length", 0, "Minimum progression length in events")

	return cmd
}
