package services

import (
	"math"
	"strings"

	"github.com/tonicworks/chordbase-api/internal/models"
	"github.com/tonicworks/chordbase-api/internal/theory"
)

const (
	maxComplexityScore = 10
	// Pattern detection needs enough events to say anything useful.
	minEventsForPatterns = 4
)

// Analyzer derives per-progression statistics and pattern flags. It depends
// only on the Classifier interface; which implementation is active is decided
// at startup.
type Analyzer struct {
	classifier theory.Classifier
}

// NewAnalyzer creates an analyzer using the given classifier.
func NewAnalyzer(classifier theory.Classifier) *Analyzer {
	return &Analyzer{classifier: classifier}
}

// Labels classifies every event in order.
func (a *Analyzer) Labels(p models.Progression) []string {
	labels := make([]string, len(p))
	for i, ps := range p {
		labels[i] = a.classifier.Classify(ps)
	}
	return labels
}

// Analyze computes the full derived record for a progression. Empty
// progressions are valid and produce zeroed statistics, never an error.
func (a *Analyzer) Analyze(p models.Progression) models.Analysis {
	labels := a.Labels(p)

	noteCounts := make([]int, len(p))
	totalNotes := 0
	for i, ps := range p {
		noteCounts[i] = len(ps)
		totalNotes += len(ps)
	}

	avgNotes := 0.0
	if len(p) > 0 {
		avgNotes = float64(totalNotes) / float64(len(p))
	}

	unique := make(map[string]bool, len(labels))
	for _, label := range labels {
		unique[label] = true
	}

	complexity := int(float64(len(unique))*1.5 + avgNotes)
	if complexity > maxComplexityScore {
		complexity = maxComplexityScore
	}

	return models.Analysis{
		ChordCount:      len(p),
		UniqueChords:    len(unique),
		ChordNames:      labels,
		ComplexityScore: complexity,
		AverageNotes:    roundOneDecimal(avgNotes),
		NoteCounts:      noteCounts,
		MidiData:        p.Raw(),
		CommonPatterns:  detectPatterns(labels),
	}
}

// ChordDetails returns per-event display data for every chord in the
// progression, for the Lua index export.
func (a *Analyzer) ChordDetails(p models.Progression) []models.ChordDetail {
	details := make([]models.ChordDetail, len(p))
	for i, ps := range p {
		details[i] = models.ChordDetail{
			ChordName: a.classifier.Classify(ps),
			Notes:     ps.NoteNames(),
			MidiNotes: append([]int{}, ps...),
			NoteCount: len(ps),
		}
	}
	return details
}

// detectPatterns flags simple shapes in the label sequence. The I-IV-V check
// is a literal text match on the first four labels and is not
// transposition-aware; the minor check matches any label with an "m" suffix.
// Both behaviors are relied on by existing consumers.
func detectPatterns(labels []string) []string {
	patterns := []string{}
	if len(labels) < minEventsForPatterns {
		return patterns
	}

	if labels[0] == labels[len(labels)-1] {
		patterns = append(patterns, "Returns to root")
	}

	if strings.Contains(strings.Join(labels[:minEventsForPatterns], " "), "C F G") {
		patterns = append(patterns, "Contains I-IV-V pattern")
	}

	for _, label := range labels {
		if strings.HasSuffix(label, "m") {
			patterns = append(patterns, "Contains minor chords")
			break
		}
	}

	return patterns
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
