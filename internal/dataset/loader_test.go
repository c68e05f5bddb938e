package dataset

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonicworks/chordbase-api/internal/config"
)

const sampleJSON = `[
	[[60, 64, 67], [65, 69, 72], [67, 71, 74], [60, 64, 67]],
	[[57, 60, 64], [65, 69, 72]]
]`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progressions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	collection, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, collection.Size())
	prog, ok := collection.Progression(0)
	require.True(t, ok)
	assert.Equal(t, 4, prog.Len())
}

func TestLoadFileEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progressions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progressions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a dataset"}`), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileMissingWithoutParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progressions.json")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconstruction failed")
}

func TestLoadFileReconstructsFromSplitArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progressions.json")

	// Zip the dataset, then split the archive into two part files the way the
	// dataset is shipped.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("progressions.json")
	require.NoError(t, err)
	_, err = f.Write([]byte(sampleJSON))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	archive := buf.Bytes()
	mid := len(archive) / 2
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progressions.zip.001"), archive[:mid], 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progressions.zip.002"), archive[mid:], 0o644))

	collection, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, collection.Size())

	// The combined intermediate archive is cleaned up after extraction.
	_, err = os.Stat(filepath.Join(dir, "combined_dataset.zip"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadEmbedded(t *testing.T) {
	collection, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Greater(t, collection.Size(), 0)
}

func TestLoadDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progressions.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	fromFile, err := Load(&config.Config{DatasetPath: path})
	require.NoError(t, err)
	assert.Equal(t, 2, fromFile.Size())

	fromEmbedded, err := Load(&config.Config{})
	require.NoError(t, err)
	assert.Greater(t, fromEmbedded.Size(), 0)
}
