package models

// Progression is an ordered sequence of chord events. Sequence order is
// playback order and is preserved in every derived output.
type Progression []PitchSet

// Len returns the number of chord events.
func (p Progression) Len() int {
	return len(p)
}

// Raw returns the progression as plain pitch slices for serialization.
func (p Progression) Raw() [][]int {
	raw := make([][]int, len(p))
	for i, ps := range p {
		raw[i] = append([]int{}, ps...)
	}
	return raw
}

// Collection holds the loaded dataset. Each progression is addressable by its
// zero-based position in load order; reloading in a different order changes
// ids. The collection is read-only after load.
type Collection struct {
	progressions []Progression
}

// NewCollection wraps an ordered list of progressions.
func NewCollection(progressions []Progression) *Collection {
	return &Collection{progressions: progressions}
}

// Size returns the number of progressions.
func (c *Collection) Size() int {
	return len(c.progressions)
}

// Progression returns the progression at the given load-order index.
func (c *Collection) Progression(id int) (Progression, bool) {
	if id < 0 || id >= len(c.progressions) {
		return nil, false
	}
	return c.progressions[id], true
}

// All returns the full ordered sequence. Callers must not mutate it.
func (c *Collection) All() []Progression {
	return c.progressions
}
