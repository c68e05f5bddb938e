// Package embedded compiles the sample progression dataset into the binary
// so the tool works out of the box without a configured dataset.
package embedded

import (
	_ "embed"
)

// ProgressionsJSON is a small sample of chord progressions in the standard
// dataset format: an array of progressions, each an array of chord events,
// each an array of MIDI pitches.
//
//go:embed data/progressions.json
var ProgressionsJSON []byte
