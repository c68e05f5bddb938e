package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tonicworks/chordbase-api/internal/models"
)

// DefaultLuaExportLimit bounds the entries written to the ReaScript index.
const DefaultLuaExportLimit = 1000

// LuaExporter writes a Lua table of progressions for the ReaScript panel.
// The table shape (CHORD_INDEX with id/chords/details entries) is the format
// the panel parses; keep it stable.
type LuaExporter struct {
	analyzer *Analyzer
}

// NewLuaExporter creates an exporter using the given analyzer for chord
// details.
func NewLuaExporter(analyzer *Analyzer) *LuaExporter {
	return &LuaExporter{analyzer: analyzer}
}

// Export writes up to limit progressions as a Lua index table.
func (e *LuaExporter) Export(w io.Writer, collection *models.Collection, limit int) error {
	if limit <= 0 {
		limit = DefaultLuaExportLimit
	}

	if _, err := io.WriteString(w, "-- Generated chord progression index\nCHORD_INDEX = {\n"); err != nil {
		return fmt.Errorf("write lua header: %w", err)
	}

	all := collection.All()
	if limit > len(all) {
		limit = len(all)
	}

	for i := 0; i < limit; i++ {
		prog := all[i]
		labels := e.analyzer.Labels(prog)
		details := e.analyzer.ChordDetails(prog)

		var b strings.Builder
		b.WriteString("  { id = ")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(", chords = { ")
		b.WriteString(joinQuoted(labels))
		b.WriteString(" }, details = { ")
		for j, d := range details {
			if j > 0 {
				b.WriteString(", ")
			}
			writeDetail(&b, d)
		}
		b.WriteString(" } },\n")

		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("write lua entry %d: %w", i, err)
		}
	}

	if _, err := io.WriteString(w, "}\n"); err != nil {
		return fmt.Errorf("write lua footer: %w", err)
	}
	return nil
}

func writeDetail(b *strings.Builder, d models.ChordDetail) {
	b.WriteString(`{ name = "`)
	b.WriteString(escapeLua(d.ChordName))
	b.WriteString(`", notes = { `)
	b.WriteString(joinQuoted(d.Notes))
	b.WriteString(" }, midi = { ")
	for i, m := range d.MidiNotes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(m))
	}
	b.WriteString(" } }")
}

func joinQuoted(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = `"` + escapeLua(s) + `"`
	}
	return strings.Join(quoted, ", ")
}

// escapeLua keeps generated strings safe inside double-quoted Lua literals.
func escapeLua(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
