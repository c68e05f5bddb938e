// Package theory implements chord-label inference over pitch sets.
//
// The heuristic classifier reproduces the labeling rules the dataset tooling
// has always used, quirks included: labels like "Cmmaj7" and the generic "2"
// for non-fifth dyads are part of the established vocabulary, and downstream
// search results depend on them. Do not "correct" the rule order.
package theory

import (
	"strconv"
	"strings"

	"github.com/tonicworks/chordbase-api/internal/models"
)

// Interval classes measured from the root, in semitones mod 12.
const (
	intervalNinth      = 2 // 9th, same class as the 2nd
	intervalMinorThird = 3
	intervalMajorThird = 4
	intervalEleventh   = 5 // 11th, same class as the 4th
	intervalDimFifth   = 6
	intervalPerfFifth  = 7
	intervalAugFifth   = 8
	intervalThirteenth = 9 // 13th, same class as the 6th
	intervalMinSeventh = 10
	intervalMajSeventh = 11
)

// Past this many distinct interval classes the heuristic gives up and reports
// only the root and note count.
const maxNamedIntervals = 5

// RestLabel is the label for an empty pitch set.
const RestLabel = "Rest"

// Classifier maps a pitch set to a chord label. Implementations must be
// deterministic and total: every input yields a label, never an error.
type Classifier interface {
	Name() string
	Classify(ps models.PitchSet) string
}

// HeuristicClassifier is the rule-based classifier. It is stateless and safe
// for concurrent use.
type HeuristicClassifier struct{}

// NewHeuristicClassifier returns the default rule-based classifier.
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Name identifies the classifier in logs and config.
func (hc *HeuristicClassifier) Name() string {
	return "heuristic"
}

// Classify returns a chord label for the pitch set. First matching rule wins:
// rest, single pitch, dyad, then interval-set classification for triads and
// larger.
func (hc *HeuristicClassifier) Classify(ps models.PitchSet) string {
	if ps.IsRest() {
		return RestLabel
	}

	rootName := ps.RootName()

	switch {
	case len(ps) == 1:
		return rootName
	case len(ps) == 2:
		if iv := ps.Intervals(); len(iv) == 1 && iv[0] == intervalPerfFifth {
			return rootName + "5"
		}
		// Generic dyad label, interval-class-agnostic on purpose.
		return rootName + "2"
	default:
		return hc.classifyTriadOrLarger(ps, rootName)
	}
}

func (hc *HeuristicClassifier) classifyTriadOrLarger(ps models.PitchSet, rootName string) string {
	intervals := ps.Intervals()

	// Too dense to name: report root and note count only.
	if len(intervals) > maxNamedIntervals {
		return rootName + "(" + strconv.Itoa(len(ps)) + ")"
	}

	present := make(map[int]bool, len(intervals))
	for _, iv := range intervals {
		present[iv] = true
	}

	label := rootName

	// Basic quality, first match wins.
	switch {
	case present[intervalMinorThird] && present[intervalDimFifth]:
		label += "dim"
	case present[intervalMinorThird]:
		label += "m"
	case present[intervalMajorThird] && present[intervalAugFifth]:
		label += "aug"
	case present[intervalMajorThird] && present[intervalPerfFifth]:
		// Plain major, no suffix.
	case present[intervalMajorThird] && present[intervalDimFifth]:
		// Tritone-substitution dominant heuristic.
		label += "7"
	case !present[intervalMajorThird] && !present[intervalMinorThird]:
		if present[intervalEleventh] {
			label += "sus4"
		} else if present[intervalNinth] {
			label += "sus2"
		}
	}

	// Sevenths. The major seventh is appended even after a minor quality;
	// "Cmmaj7" is established output.
	if present[intervalMajSeventh] {
		label += "maj7"
	} else if present[intervalMinSeventh] {
		label += "7"
	}

	// Single highest upper extension, 13 over 11 over 9. A bare trailing "7"
	// folds into the extension digit; "maj7" stays.
	var extension string
	switch {
	case present[intervalThirteenth]:
		extension = "13"
	case present[intervalEleventh]:
		extension = "11"
	case present[intervalNinth]:
		extension = "9"
	}
	if extension != "" {
		if strings.HasSuffix(label, "7") && !strings.HasSuffix(label, "maj7") {
			label = label[:len(label)-1]
		}
		label += extension
	}

	return label
}
