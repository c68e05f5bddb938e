package dataset

import (
	"fmt"

	"github.com/tonicworks/chordbase-api/internal/config"
	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/pkg/embedded"
)

// LoadEmbedded decodes the sample dataset compiled into the binary. It backs
// demos and tests when no external dataset is configured.
func LoadEmbedded() (*models.Collection, error) {
	collection, err := decode(embedded.ProgressionsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return collection, nil
}

// Load picks the collection source from configuration: database DSN first,
// then dataset file, then the embedded sample.
func Load(cfg *config.Config) (*models.Collection, error) {
	switch {
	case cfg.DatasetURL != "":
		return LoadDB(cfg.DatasetURL)
	case cfg.DatasetPath != "":
		return LoadFile(cfg.DatasetPath)
	default:
		logger.Warn("No dataset configured, using embedded sample", logger.Fields{})
		return LoadEmbedded()
	}
}
