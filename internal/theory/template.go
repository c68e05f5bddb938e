package theory

import (
	"fmt"

	"github.com/tonicworks/chordbase-api/internal/models"
)

// chordTemplate is an interval pattern matched against the pitch-class
// content of a set. Suffix is the label fragment appended to the root name.
type chordTemplate struct {
	name      string
	suffix    string
	intervals []int
	weight    float64
}

// Templates ordered so richer chords are tried before their subsets.
var chordTemplates = []chordTemplate{
	{name: "major7", suffix: "maj7", intervals: []int{0, 4, 7, 11}, weight: 0.85},
	{name: "minor7", suffix: "m7", intervals: []int{0, 3, 7, 10}, weight: 0.85},
	{name: "dominant7", suffix: "7", intervals: []int{0, 4, 7, 10}, weight: 0.9},
	{name: "major", suffix: "", intervals: []int{0, 4, 7}, weight: 1.0},
	{name: "minor", suffix: "m", intervals: []int{0, 3, 7}, weight: 1.0},
	{name: "diminished", suffix: "dim", intervals: []int{0, 3, 6}, weight: 0.8},
	{name: "augmented", suffix: "aug", intervals: []int{0, 4, 8}, weight: 0.7},
	{name: "sus2", suffix: "sus2", intervals: []int{0, 2, 7}, weight: 0.7},
	{name: "sus4", suffix: "sus4", intervals: []int{0, 5, 7}, weight: 0.7},
	{name: "power", suffix: "5", intervals: []int{0, 7}, weight: 0.6},
}

// minTemplateScore is the confidence floor below which the template matcher
// refuses to name a chord.
const minTemplateScore = 0.6

// TemplateClassifier is the advanced classification path: it matches the
// pitch-class profile of a set against known chord templates across all
// twelve roots. Unlike the heuristic it is partial; sets it cannot match with
// enough confidence produce an error and the caller falls back.
type TemplateClassifier struct {
	minScore float64
}

// NewTemplateClassifier returns a template matcher with the default
// confidence floor.
func NewTemplateClassifier() *TemplateClassifier {
	return &TemplateClassifier{minScore: minTemplateScore}
}

// Name identifies the classifier in logs and config.
func (tc *TemplateClassifier) Name() string {
	return "template"
}

// Classify attempts to name the chord by template matching. It returns an
// error for rests, single pitches, and sets no template explains well enough.
func (tc *TemplateClassifier) Classify(ps models.PitchSet) (string, error) {
	if ps.IsRest() {
		return "", fmt.Errorf("template classifier: empty pitch set")
	}
	if len(ps) == 1 {
		return "", fmt.Errorf("template classifier: single pitch has no quality")
	}

	var chroma [12]bool
	count := 0
	for _, p := range ps {
		class := p % 12
		if !chroma[class] {
			chroma[class] = true
			count++
		}
	}

	bestScore := 0.0
	bestLabel := ""
	for root := 0; root < 12; root++ {
		for _, tmpl := range chordTemplates {
			score := tc.score(&chroma, count, root, &tmpl)
			if score > bestScore {
				bestScore = score
				bestLabel = models.NoteName(root) + tmpl.suffix
			}
		}
	}

	if bestScore < tc.minScore {
		return "", fmt.Errorf("template classifier: no template above score %.2f (best %.2f)", tc.minScore, bestScore)
	}
	return bestLabel, nil
}

// score rates how well a template rooted at the given pitch class explains
// the chroma content: matched template tones count for, sounding tones
// outside the template count against.
func (tc *TemplateClassifier) score(chroma *[12]bool, sounding, root int, tmpl *chordTemplate) float64 {
	matched := 0
	for _, iv := range tmpl.intervals {
		if chroma[(root+iv)%12] {
			matched++
		}
	}
	if matched < len(tmpl.intervals) {
		return 0
	}

	extras := sounding - matched
	coverage := float64(matched) / float64(matched+extras)
	return coverage * tmpl.weight
}

// FallbackClassifier tries the template classifier first and falls back to a
// total classifier on any failure. Consumers see a single Classifier and
// never branch on which path produced the label.
type FallbackClassifier struct {
	primary  *TemplateClassifier
	fallback Classifier
}

// NewFallbackClassifier composes the advanced path with a total fallback.
func NewFallbackClassifier(primary *TemplateClassifier, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, fallback: fallback}
}

// Name identifies the classifier in logs and config.
func (fc *FallbackClassifier) Name() string {
	return "template+" + fc.fallback.Name()
}

// Classify returns the template label when one is available, otherwise the
// fallback's label. Total by construction.
func (fc *FallbackClassifier) Classify(ps models.PitchSet) string {
	if label, err := fc.primary.Classify(ps); err == nil {
		return label
	}
	return fc.fallback.Classify(ps)
}

// ForName returns the configured classifier: "advanced" selects the template
// matcher with heuristic fallback, anything else the plain heuristic.
func ForName(name string) Classifier {
	if name == "advanced" {
		return NewFallbackClassifier(NewTemplateClassifier(), NewHeuristicClassifier())
	}
	return NewHeuristicClassifier()
}
