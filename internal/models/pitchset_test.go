package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPitchSetSortsAndDedups(t *testing.T) {
	ps := NewPitchSet(67, 60, 64, 67, 60)
	assert.Equal(t, PitchSet{60, 64, 67}, ps)
}

func TestNewPitchSetEmpty(t *testing.T) {
	ps := NewPitchSet()
	assert.True(t, ps.IsRest())

	_, ok := ps.Root()
	assert.False(t, ok)
	assert.Equal(t, "", ps.RootName())
	assert.Nil(t, ps.Intervals())
}

func TestRootIsLowestPitch(t *testing.T) {
	ps := NewPitchSet(64, 57, 60)

	root, ok := ps.Root()
	assert.True(t, ok)
	assert.Equal(t, 57, root)

	class, ok := ps.RootClass()
	assert.True(t, ok)
	assert.Equal(t, 9, class)
	assert.Equal(t, "A", ps.RootName())
}

func TestIntervals(t *testing.T) {
	tests := []struct {
		name     string
		pitches  []int
		expected []int
	}{
		{"major triad", []int{60, 64, 67}, []int{4, 7}},
		{"single pitch", []int{60}, nil},
		{"octave doubling folds to zero", []int{60, 64, 67, 72}, []int{0, 4, 7}},
		{"duplicate classes collapse", []int{60, 64, 76}, []int{4}},
		{"dominant seventh", []int{60, 64, 67, 70}, []int{4, 7, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPitchSet(tt.pitches...).Intervals())
		})
	}
}

func TestNoteNames(t *testing.T) {
	ps := NewPitchSet(60, 64, 67)
	assert.Equal(t, []string{"C4", "E4", "G4"}, ps.NoteNames())

	low := NewPitchSet(0)
	assert.Equal(t, []string{"C-1"}, low.NoteNames())

	assert.Equal(t, "A", NoteName(69))
}

func TestCollectionLookup(t *testing.T) {
	c := NewCollection([]Progression{
		{NewPitchSet(60, 64, 67)},
		{NewPitchSet(57, 60, 64), NewPitchSet(65, 69, 72)},
	})

	assert.Equal(t, 2, c.Size())

	prog, ok := c.Progression(1)
	assert.True(t, ok)
	assert.Equal(t, 2, prog.Len())

	_, ok = c.Progression(2)
	assert.False(t, ok)
	_, ok = c.Progression(-1)
	assert.False(t, ok)
}
