// Package dataset loads the progression collection the rest of the system
// treats as a read-only input. Loaders return a distinct no-data error so
// callers can tell an empty dataset from a broken one.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tonicworks/chordbase-api/internal/logger"
	"github.com/tonicworks/chordbase-api/internal/models"
)

// ErrNoData reports a source that loaded cleanly but contained no
// progressions.
var ErrNoData = errors.New("dataset contains no progressions")

// LoadFile reads a JSON dataset: an array of progressions, each an array of
// chord events, each an array of MIDI pitches. If the file is missing it
// attempts to reconstruct it from split zip parts in the same directory
// before giving up.
func LoadFile(path string) (*models.Collection, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if restoreErr := restoreFromParts(path); restoreErr != nil {
			return nil, fmt.Errorf("dataset %s not found and reconstruction failed: %w", path, restoreErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	collection, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	logger.Info("Dataset loaded", logger.Fields{
		"path":         path,
		"progressions": collection.Size(),
	})
	return collection, nil
}

func decode(data []byte) (*models.Collection, error) {
	var raw [][][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoData
	}

	progressions := make([]models.Progression, len(raw))
	for i, rawProg := range raw {
		p := make(models.Progression, len(rawProg))
		for j, event := range rawProg {
			p[j] = models.NewPitchSet(event...)
		}
		progressions[i] = p
	}
	return models.NewCollection(progressions), nil
}
