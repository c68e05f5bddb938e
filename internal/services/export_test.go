package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/theory"
)

func TestLuaExport(t *testing.T) {
	analyzer := NewAnalyzer(theory.NewHeuristicClassifier())
	exporter := NewLuaExporter(analyzer)
	collection := models.NewCollection([]models.Progression{
		prog([]int{60, 64, 67}, []int{65, 69, 72}),
		prog([]int{57, 60, 64}),
	})

	var sb strings.Builder
	require.NoError(t, exporter.Export(&sb, collection, 0))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "-- Generated chord progression index\nCHORD_INDEX = {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `id = 0, chords = { "C", "F" }`)
	assert.Contains(t, out, `id = 1, chords = { "Am" }`)
	assert.Contains(t, out, `{ name = "C", notes = { "C4", "E4", "G4" }, midi = { 60, 64, 67 } }`)

	// Braces stay balanced so the panel can load the table.
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
}

func TestLuaExportHonorsLimit(t *testing.T) {
	analyzer := NewAnalyzer(theory.NewHeuristicClassifier())
	exporter := NewLuaExporter(analyzer)

	progressions := make([]models.Progression, 5)
	for i := range progressions {
		progressions[i] = prog([]int{60, 64, 67})
	}
	collection := models.NewCollection(progressions)

	var sb strings.Builder
	require.NoError(t, exporter.Export(&sb, collection, 2))

	assert.Contains(t, sb.String(), "id = 1,")
	assert.NotContains(t, sb.String(), "id = 2,")
}
