package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/theory"
)

func newTestEngine(progressions ...models.Progression) *QueryEngine {
	collection := models.NewCollection(progressions)
	analyzer := NewAnalyzer(theory.NewHeuristicClassifier())
	return NewQueryEngine(collection, analyzer, rand.New(rand.NewSource(42)))
}

// testCorpus holds a small mixed set of progressions:
//
//	0: C F G C        (4 events)
//	1: Am F           (2 events)
//	2: Cdim           (1 event)
//	3: C G Am F C G   (6 events)
func testCorpus() []models.Progression {
	return []models.Progression{
		prog([]int{60, 64, 67}, []int{65, 69, 72}, []int{67, 71, 74}, []int{60, 64, 67}),
		prog([]int{57, 60, 64}, []int{65, 69, 72}),
		prog([]int{60, 63, 66}),
		prog([]int{60, 64, 67}, []int{67, 71, 74}, []int{57, 60, 64}, []int{65, 69, 72}, []int{60, 64, 67}, []int{67, 71, 74}),
	}
}

func TestBrowsePagination(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	page1 := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 2})
	assert.Equal(t, 4, page1.TotalItems)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Len(t, page1.Progressions, 2)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrevious)
	assert.Equal(t, 0, page1.Progressions[0].ID)
	assert.Equal(t, 1, page1.Progressions[1].ID)

	page2 := q.Browse(models.BrowseParams{Page: 2, ItemsPerPage: 2})
	assert.Len(t, page2.Progressions, 2)
	assert.False(t, page2.HasNext)
	assert.True(t, page2.HasPrevious)
	assert.Equal(t, 2, page2.Progressions[0].ID)

	// Past the end: empty page, not an error.
	page9 := q.Browse(models.BrowseParams{Page: 9, ItemsPerPage: 2})
	assert.Empty(t, page9.Progressions)
	assert.False(t, page9.HasNext)
	assert.True(t, page9.HasPrevious)
}

func TestBrowseConcatenationReproducesOrder(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	var collected [][][]int
	for page := 1; ; page++ {
		result := q.Browse(models.BrowseParams{Page: page, ItemsPerPage: 3})
		for _, item := range result.Progressions {
			collected = append(collected, item.RawProgression)
		}
		if !result.HasNext {
			break
		}
	}

	require.Len(t, collected, 4)
	for i, p := range testCorpus() {
		assert.Equal(t, p.Raw(), collected[i])
	}
}

func TestBrowseMinLengthFilter(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	result := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, MinLength: 4})
	require.Len(t, result.Progressions, 2)
	assert.Equal(t, 4, result.Progressions[0].ChordCount)
	assert.Equal(t, 6, result.Progressions[1].ChordCount)

	// Ids index the filtered sequence, not the collection.
	assert.Equal(t, 0, result.Progressions[0].ID)
	assert.Equal(t, 1, result.Progressions[1].ID)
}

func TestBrowseSearchCaseInsensitive(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	lower := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "dim"})
	require.Len(t, lower.Progressions, 1)
	assert.Equal(t, []string{"Cdim"}, lower.Progressions[0].Chords)

	upper := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "DIM"})
	assert.Equal(t, lower.TotalItems, upper.TotalItems)

	am := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "am"})
	assert.Equal(t, 2, am.TotalItems)
}

func TestBrowseSearchAfterLengthFilter(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	// "Am" appears in progressions 1 and 3; only 3 survives min length 4.
	result := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "Am", MinLength: 4})
	require.Equal(t, 1, result.TotalItems)
	assert.Equal(t, 6, result.Progressions[0].ChordCount)
}

func TestBrowseSearchRepeatedQueriesStable(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	first := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "g"})
	second := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "g"})
	assert.Equal(t, first, second)

	// A different filter shape must not be poisoned by cached labels.
	filtered := q.Browse(models.BrowseParams{Page: 1, ItemsPerPage: 10, SearchQuery: "g", MinLength: 3})
	for _, item := range filtered.Progressions {
		assert.GreaterOrEqual(t, item.ChordCount, 3)
	}
}

func TestAnalyzeByID(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	analysis, err := q.Analyze(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "F", "G", "C"}, analysis.ChordNames)

	_, err = q.Analyze(99)
	require.Error(t, err)

	var invalidID *ErrInvalidID
	require.True(t, errors.As(err, &invalidID))
	assert.Equal(t, 99, invalidID.ID)
	assert.Equal(t, 4, invalidID.Size)

	_, err = q.Analyze(-1)
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	q := newTestEngine(testCorpus()...)

	stats, err := q.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalProgressions)
	assert.Equal(t, 1, stats.MinLength)
	assert.Equal(t, 6, stats.MaxLength)
	// (4+2+1+6)/4 = 3.25
	assert.InDelta(t, 3.25, stats.AverageLength, 1e-9)
	assert.True(t, stats.DatasetLoaded)
}

func TestStatsEmptyCollection(t *testing.T) {
	q := newTestEngine()
	_, err := q.Stats()
	require.Error(t, err)
}

func TestGenerateSimilarLengthWindow(t *testing.T) {
	q := newTestEngine(testCorpus()...)
	template := testCorpus()[0] // 4 events

	for i := 0; i < 50; i++ {
		got := q.GenerateSimilar(template)
		diff := got.Len() - template.Len()
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 2)
	}
}

func TestGenerateSimilarFallsBackToFullCollection(t *testing.T) {
	// Only a single 20-event progression is nowhere near the 1-event template.
	long := make([][]int, 20)
	for i := range long {
		long[i] = []int{60, 64, 67}
	}
	q := newTestEngine(prog(long...))

	got := q.GenerateSimilar(prog([]int{60}))
	assert.Equal(t, 20, got.Len())
}

func TestGenerateSeededDeterminism(t *testing.T) {
	corpus := testCorpus()

	a := newTestEngine(corpus...)
	b := newTestEngine(corpus...)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.GenerateRandom(), b.GenerateRandom())
	}
}
