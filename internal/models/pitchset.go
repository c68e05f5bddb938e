package models

import (
	"sort"
	"strconv"
)

// noteNames maps a pitch class (0-11) to its display name.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const semitonesPerOctave = 12

// PitchSet is one chord event: the distinct MIDI pitches sounding at the same
// time, kept sorted ascending. An empty PitchSet is a rest and is never
// classified by interval rules.
type PitchSet []int

// NewPitchSet builds a PitchSet from raw pitches, collapsing duplicates and
// sorting ascending. Input order is irrelevant.
func NewPitchSet(pitches ...int) PitchSet {
	if len(pitches) == 0 {
		return PitchSet{}
	}

	seen := make(map[int]bool, len(pitches))
	ps := make(PitchSet, 0, len(pitches))
	for _, p := range pitches {
		if !seen[p] {
			seen[p] = true
			ps = append(ps, p)
		}
	}
	sort.Ints(ps)
	return ps
}

// IsRest reports whether the set contains no pitches.
func (ps PitchSet) IsRest() bool {
	return len(ps) == 0
}

// Root returns the lowest pitch. Callers must check IsRest first; the second
// return value is false for a rest.
func (ps PitchSet) Root() (int, bool) {
	if len(ps) == 0 {
		return 0, false
	}
	return ps[0], true
}

// RootClass returns the pitch class (0-11) of the root.
func (ps PitchSet) RootClass() (int, bool) {
	root, ok := ps.Root()
	if !ok {
		return 0, false
	}
	return root % semitonesPerOctave, true
}

// RootName returns the note name of the root pitch class, or "" for a rest.
func (ps PitchSet) RootName() string {
	class, ok := ps.RootClass()
	if !ok {
		return ""
	}
	return noteNames[class]
}

// Intervals returns the sorted distinct interval classes (p - root) mod 12
// for every pitch except the root itself.
func (ps PitchSet) Intervals() []int {
	if len(ps) < 2 {
		return nil
	}

	root := ps[0]
	seen := make(map[int]bool, len(ps)-1)
	intervals := make([]int, 0, len(ps)-1)
	for _, p := range ps[1:] {
		iv := (p - root) % semitonesPerOctave
		if !seen[iv] {
			seen[iv] = true
			intervals = append(intervals, iv)
		}
	}
	sort.Ints(intervals)
	return intervals
}

// NoteNames returns the display names with octaves for every pitch, sorted by
// raw pitch value. MIDI octave numbering puts pitch 60 at C4.
func (ps PitchSet) NoteNames() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		octave := p/semitonesPerOctave - 1
		names = append(names, noteName(p%semitonesPerOctave, octave))
	}
	return names
}

// NoteName returns the pitch-class name for a single pitch, without octave.
func NoteName(pitch int) string {
	return noteNames[pitch%semitonesPerOctave]
}

func noteName(class, octave int) string {
	return noteNames[class] + strconv.Itoa(octave)
}
