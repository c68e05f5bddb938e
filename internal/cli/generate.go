package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/models"
)

type generateOutput struct {
	TemplateID  *int     `json:"template_id,omitempty"`
	Progression [][]int  `json:"progression"`
	Chords      []string `json:"chords"`
	ChordCount  int      `json:"chord_count"`
}

func generateCommand(app *App) *cobra.Command {
	var templateID int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample a progression, optionally similar in length to a template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()

			var (
				generated models.Progression
				usedID    *int
			)
			if cmd.Flags().Changed("template-id") {
				template, err := app.Engine.Progression(templateID)
				if err != nil {
					app.Metrics.RecordGenerationDuration(time.Since(start), false)
					return err
				}
				generated = app.Engine.GenerateSimilar(template)
				usedID = &templateID
			} else {
				generated = app.Engine.GenerateRandom()
			}

			app.Metrics.RecordGenerationDuration(time.Since(start), true)

			return printJSON(cmd.OutOrStdout(), generateOutput{
				TemplateID:  usedID,
				Progression: generated.Raw(),
				Chords:      app.Analyzer.Labels(generated),
				ChordCount:  generated.Len(),
			})
		},
	}

	cmd.Flags().IntVar(&templateID, "template-id", 0, "Progression id whose length guides the pick")

	return cmd
}
