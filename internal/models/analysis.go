package models

// Analysis is the derived, read-only record produced for one progression.
// Field names match the wire format consumed by the ReaScript panel and the
// CLI; always recomputed on demand, never persisted.
type Analysis struct {
	ChordCount      int      `json:"chord_count"`
	UniqueChords    int      `json:"unique_chords"`
	ChordNames      []string `json:"chord_names"`
	ComplexityScore int      `json:"complexity_score"`
	AverageNotes    float64  `json:"average_notes_per_chord"`
	NoteCounts      []int    `json:"note_counts"`
	MidiData        [][]int  `json:"midi_data"`
	CommonPatterns  []string `json:"common_patterns"`
}

// ChordDetail describes a single chord event for the Lua index export.
type ChordDetail struct {
	ChordName string   `json:"chord_name"`
	Notes     []string `json:"notes"`
	MidiNotes []int    `json:"midi_notes"`
	NoteCount int      `json:"note_count"`
}

// CollectionStats summarizes the loaded dataset.
type CollectionStats struct {
	TotalProgressions int     `json:"total_progressions"`
	AverageLength     float64 `json:"average_length"`
	MinLength         int     `json:"min_length"`
	MaxLength         int     `json:"max_length"`
	DatasetLoaded     bool    `json:"dataset_loaded"`
}
