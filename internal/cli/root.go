package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/config"
	"github.com/tonicworks/chordbase-api/internal/dataset"
	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/metrics"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/services"
	"github.com/tonicworks/chordbase-api/internal/theory"
)

// App bundles the loaded collection and the services built over it. It is
// populated once, before any subcommand runs; a load failure aborts the
// whole invocation.
type App struct {
	Cfg        *config.Config
	Version    string
	Collection *models.Collection
	Analyzer   *services.Analyzer
	Engine     *services.QueryEngine
	Metrics    *metrics.Client
}

// RootCommand creates and returns the root command
func RootCommand(cfg *config.Config, version string) *cobra.Command {
	app := &App{Cfg: cfg, Version: version}

	rootCmd := &cobra.Command{
		Use:           "chordbase",
		Short:         "Chord progression dataset browser and analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	subcommands := []*cobra.Command{
		browseCommand(app),
		analyzeCommand(app),
		generateCommand(app),
		statsCommand(app),
		exportLuaIndexCommand(app),
		serveCommand(app),
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.initialize(cmd)
	}

	return rootCmd
}

// initialize loads the collection and wires the services. Called before any
// subcommand; an empty or unreadable dataset short-circuits here.
func (a *App) initialize(cmd *cobra.Command) error {
	collection, err := dataset.Load(a.Cfg)
	if err != nil {
		if errors.Is(err, dataset.ErrNoData) {
			return fmt.Errorf("dataset contains no progressions: %w", err)
		}
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	seed := a.Cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.Collection = collection
	a.Analyzer = services.NewAnalyzer(theory.ForName(a.Cfg.Classifier))
	a.Engine = services.NewQueryEngine(collection, a.Analyzer, rand.New(rand.NewSource(seed)))

	metricsClient, err := metrics.NewClient(cmd.Context(), a.Cfg.Environment)
	if err != nil {
		logger.Warn("CloudWatch metrics unavailable", logger.Fields{"error": err.Error()})
	}
	a.Metrics = metricsClient

	logger.Info("Dataset loaded", logger.Fields{
		"total_progressions": collection.Size(),
		"classifier":         a.Cfg.Classifier,
	})

	return nil
}

// printJSON writes v as indented JSON, the output format of every subcommand.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
