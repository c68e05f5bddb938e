package services

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/tonicworks/chordbase-api/internal/models"
)

const (
	// Search classifies the whole corpus; cached label sequences keep repeat
	// queries from redoing that work. The contract stays recompute-on-demand.
	labelCacheExpiration = 10 * time.Minute
	labelCacheCleanup    = 15 * time.Minute

	// Similar-length window for generation candidates, in events.
	similarLengthWindow = 2
)

// ErrInvalidID reports a progression or template id outside the collection.
type ErrInvalidID struct {
	ID   int
	Size int
}

func (e *ErrInvalidID) Error() string {
	return fmt.Sprintf("invalid progression id %d (collection size %d)", e.ID, e.Size)
}

// QueryEngine browses, searches, and samples the loaded collection. The
// collection is read-only for the engine's lifetime; all methods are safe for
// concurrent use. The random source is injected so tests can seed it.
type QueryEngine struct {
	collection *models.Collection
	analyzer   *Analyzer
	rng        *rand.Rand
	labelCache *gocache.Cache
}

// NewQueryEngine creates a query engine over an immutable collection.
func NewQueryEngine(collection *models.Collection, analyzer *Analyzer, rng *rand.Rand) *QueryEngine {
	return &QueryEngine{
		collection: collection,
		analyzer:   analyzer,
		rng:        rng,
		labelCache: gocache.New(labelCacheExpiration, labelCacheCleanup),
	}
}

// Progression returns the progression at the given collection id, or
// ErrInvalidID when it is out of range.
func (q *QueryEngine) Progression(id int) (models.Progression, error) {
	prog, ok := q.collection.Progression(id)
	if !ok {
		return nil, &ErrInvalidID{ID: id, Size: q.collection.Size()}
	}
	return prog, nil
}

// Analyze runs the analyzer for the progression at the given id.
func (q *QueryEngine) Analyze(id int) (models.Analysis, error) {
	prog, err := q.Progression(id)
	if err != nil {
		return models.Analysis{}, err
	}
	return q.analyzer.Analyze(prog), nil
}

// Browse applies the min-length filter, then the label search, then
// paginates. Filter order matters: length first keeps the expensive
// classification pass as small as possible.
func (q *QueryEngine) Browse(params models.BrowseParams) models.BrowsePage {
	filtered := q.filter(params)

	totalItems := len(filtered)
	startIdx := (params.Page - 1) * params.ItemsPerPage
	endIdx := startIdx + params.ItemsPerPage

	// Clamp to the available range; a page past the end is empty, not an
	// error. has_previous stays purely page-number-based.
	sliceStart := startIdx
	if sliceStart > totalItems {
		sliceStart = totalItems
	}
	sliceEnd := endIdx
	if sliceEnd > totalItems {
		sliceEnd = totalItems
	}

	items := make([]models.BrowseItem, 0, sliceEnd-sliceStart)
	for i, prog := range filtered[sliceStart:sliceEnd] {
		analysis := q.analyzer.Analyze(prog)
		items = append(items, models.BrowseItem{
			ID:             startIdx + i,
			RawProgression: prog.Raw(),
			Chords:         analysis.ChordNames,
			ChordCount:     analysis.ChordCount,
			Complexity:     analysis.ComplexityScore,
			Patterns:       analysis.CommonPatterns,
		})
	}

	return models.BrowsePage{
		Progressions: items,
		Page:         params.Page,
		ItemsPerPage: params.ItemsPerPage,
		TotalItems:   totalItems,
		TotalPages:   (totalItems + params.ItemsPerPage - 1) / params.ItemsPerPage,
		HasNext:      endIdx < totalItems,
		HasPrevious:  params.Page > 1,
	}
}

// filter applies the min-length and search filters in that order, preserving
// collection order throughout.
func (q *QueryEngine) filter(params models.BrowseParams) []models.Progression {
	all := q.collection.All()

	// Carry the original collection index through filtering; it keys the
	// label cache regardless of the active filter parameters.
	indices := make([]int, 0, len(all))
	for i, prog := range all {
		if params.MinLength > 0 && prog.Len() < params.MinLength {
			continue
		}
		indices = append(indices, i)
	}

	if params.SearchQuery != "" {
		query := strings.ToLower(params.SearchQuery)
		kept := make([]int, 0, len(indices))
		for _, idx := range indices {
			if q.labelsMatch(idx, all[idx], query) {
				kept = append(kept, idx)
			}
		}
		indices = kept
	}

	filtered := make([]models.Progression, len(indices))
	for i, idx := range indices {
		filtered[i] = all[idx]
	}
	return filtered
}

// labelsMatch reports whether any chord label of the progression contains the
// lowercased query. Labels are cached per collection index.
func (q *QueryEngine) labelsMatch(idx int, prog models.Progression, query string) bool {
	key := strconv.Itoa(idx)

	var labels []string
	if cached, ok := q.labelCache.Get(key); ok {
		labels = cached.([]string)
	} else {
		labels = q.analyzer.Labels(prog)
		q.labelCache.Set(key, labels, gocache.DefaultExpiration)
	}

	for _, label := range labels {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}
	return false
}

// Stats summarizes the collection. An empty collection is a load-time
// failure, so Stats treats it as an error rather than dividing by zero.
func (q *QueryEngine) Stats() (models.CollectionStats, error) {
	size := q.collection.Size()
	if size == 0 {
		return models.CollectionStats{}, fmt.Errorf("collection is empty")
	}

	total := 0
	minLen := q.collection.All()[0].Len()
	maxLen := minLen
	for _, prog := range q.collection.All() {
		n := prog.Len()
		total += n
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
	}

	avg := float64(total) / float64(size)
	return models.CollectionStats{
		TotalProgressions: size,
		AverageLength:     roundTwoDecimals(avg),
		MinLength:         minLen,
		MaxLength:         maxLen,
		DatasetLoaded:     true,
	}, nil
}

// GenerateSimilar picks a progression whose length is within two events of
// the template's, uniformly at random; when none qualify it falls back to a
// uniform pick over the whole collection. Never fails on a non-empty
// collection.
func (q *QueryEngine) GenerateSimilar(template models.Progression) models.Progression {
	all := q.collection.All()
	templateLen := template.Len()

	candidates := make([]models.Progression, 0)
	for _, prog := range all {
		diff := prog.Len() - templateLen
		if diff < 0 {
			diff = -diff
		}
		if diff <= similarLengthWindow {
			candidates = append(candidates, prog)
		}
	}

	if len(candidates) == 0 {
		candidates = all
	}
	return candidates[q.rng.Intn(len(candidates))]
}

// GenerateRandom picks any progression uniformly at random.
func (q *QueryEngine) GenerateRandom() models.Progression {
	all := q.collection.All()
	return all[q.rng.Intn(len(all))]
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
