package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonicworks/chordbase-api/internal/models"
)

func TestHeuristicClassify(t *testing.T) {
	tests := []struct {
		name     string
		pitches  []int
		expected string
	}{
		{name: "rest", pitches: nil, expected: "Rest"},
		{name: "single pitch", pitches: []int{60}, expected: "C"},
		{name: "perfect fifth dyad", pitches: []int{60, 67}, expected: "C5"},
		{name: "non-fifth dyad", pitches: []int{60, 62}, expected: "C2"},
		{name: "major third dyad keeps generic label", pitches: []int{60, 64}, expected: "C2"},
		{name: "octave dyad", pitches: []int{60, 72}, expected: "C2"},
		{name: "major triad", pitches: []int{60, 64, 67}, expected: "C"},
		{name: "minor triad", pitches: []int{60, 63, 67}, expected: "Cm"},
		{name: "diminished triad", pitches: []int{60, 63, 66}, expected: "Cdim"},
		{name: "augmented triad", pitches: []int{60, 64, 68}, expected: "Caug"},
		{name: "sus4 triad gets extension digit", pitches: []int{60, 65, 67}, expected: "Csus411"},
		{name: "sus2 triad gets extension digit", pitches: []int{60, 62, 67}, expected: "Csus29"},
		{name: "major seventh", pitches: []int{60, 64, 67, 71}, expected: "Cmaj7"},
		{name: "dominant seventh", pitches: []int{60, 64, 67, 70}, expected: "C7"},
		{name: "minor seventh", pitches: []int{60, 63, 67, 70}, expected: "Cm7"},
		{name: "minor with major seventh keeps both suffixes", pitches: []int{60, 63, 67, 71}, expected: "Cmmaj7"},
		{name: "tritone substitution dominant", pitches: []int{60, 64, 66}, expected: "C7"},
		{name: "ninth folds trailing seven", pitches: []int{60, 64, 67, 70, 74}, expected: "C9"},
		{name: "thirteenth wins over ninth", pitches: []int{60, 64, 67, 70, 74, 81}, expected: "C13"},
		{name: "maj7 survives extension append", pitches: []int{60, 64, 67, 71, 74}, expected: "Cmaj79"},
		{name: "non-C root", pitches: []int{62, 66, 69}, expected: "D"},
		{name: "minor root name from lowest pitch", pitches: []int{57, 60, 64}, expected: "Am"},
	}

	hc := NewHeuristicClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := models.NewPitchSet(tt.pitches...)
			assert.Equal(t, tt.expected, hc.Classify(ps))
		})
	}
}

func TestHeuristicClassifyOverflowGuard(t *testing.T) {
	hc := NewHeuristicClassifier()

	// A chromatic cluster has far more than five distinct interval classes.
	cluster := models.NewPitchSet(60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71)
	assert.Equal(t, "C(12)", hc.Classify(cluster))

	// Exactly six interval classes trips the guard too.
	six := models.NewPitchSet(60, 61, 62, 63, 64, 65, 66)
	assert.Equal(t, "C(7)", hc.Classify(six))

	// Five interval classes still gets a real name.
	five := models.NewPitchSet(60, 64, 67, 70, 74, 77)
	assert.NotContains(t, hc.Classify(five), "(")
}

func TestHeuristicClassifyDeterministic(t *testing.T) {
	hc := NewHeuristicClassifier()
	ps := models.NewPitchSet(60, 63, 67, 70)

	first := hc.Classify(ps)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, hc.Classify(ps))
	}
}

func TestTemplateClassify(t *testing.T) {
	tc := NewTemplateClassifier()

	tests := []struct {
		name     string
		pitches  []int
		expected string
	}{
		{name: "major triad", pitches: []int{60, 64, 67}, expected: "C"},
		{name: "minor triad", pitches: []int{57, 60, 64}, expected: "Am"},
		{name: "dominant seventh", pitches: []int{55, 59, 62, 65}, expected: "G7"},
		{name: "power chord", pitches: []int{40, 47}, expected: "E5"},
		{name: "sus4", pitches: []int{60, 65, 67}, expected: "Csus4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := tc.Classify(models.NewPitchSet(tt.pitches...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
		})
	}
}

func TestTemplateClassifyRefusals(t *testing.T) {
	tc := NewTemplateClassifier()

	_, err := tc.Classify(models.NewPitchSet())
	require.Error(t, err)

	_, err = tc.Classify(models.NewPitchSet(60))
	require.Error(t, err)

	// A chromatic cluster drowns every template in extras.
	_, err = tc.Classify(models.NewPitchSet(60, 61, 62, 63, 64, 65, 66, 67))
	require.Error(t, err)
}

func TestFallbackClassifierTotal(t *testing.T) {
	fc := NewFallbackClassifier(NewTemplateClassifier(), NewHeuristicClassifier())

	// The template path refuses these, so the heuristic labels apply.
	assert.Equal(t, "Rest", fc.Classify(models.NewPitchSet()))
	assert.Equal(t, "C", fc.Classify(models.NewPitchSet(60)))
	assert.Equal(t, "C(8)", fc.Classify(models.NewPitchSet(60, 61, 62, 63, 64, 65, 66, 67)))

	// Both paths agree on a plain major triad.
	assert.Equal(t, "C", fc.Classify(models.NewPitchSet(60, 64, 67)))
}

func TestForName(t *testing.T) {
	assert.Equal(t, "heuristic", ForName("heuristic").Name())
	assert.Equal(t, "heuristic", ForName("").Name())
	assert.Equal(t, "template+heuristic", ForName("advanced").Name())
}
