package dataset

import (
	"archive/zip"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractArchive(t *testing.T) {
	t.Run("flattens nested entry into destination", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, "cities.txt.zip")
		writeZip(t, archive, map[string]string{
			"data/cities.txt": "Country,City,Accent City,Region,Latitude,Longitude\n",
		})

		err := ExtractArchive(archive, dir, testLogger())
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "cities.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Country,City,Accent City,Region,Latitude,Longitude\n", string(content))
	})

	t.Run("overwrites previously extracted file", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, "cities.txt.zip")
		writeZip(t, archive, map[string]string{"cities.txt": "fresh"})

		stale := filepath.Join(dir, "cities.txt")
		require.NoError(t, os.WriteFile(stale, []byte("stale content from an earlier run"), 0o644))

		err := ExtractArchive(archive, dir, testLogger())
		require.NoError(t, err)

		content, err := os.ReadFile(stale)
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(content))
	})

	t.Run("missing archive names the expected path", func(t *testing.T) {
		dir := t.TempDir()
		missing := filepath.Join(dir, "cities.txt.zip")

		err := ExtractArchive(missing, dir, testLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("relative entry paths cannot escape the destination", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out")
		archive := filepath.Join(dir, "evil.zip")
		writeZip(t, archive, map[string]string{"../evil.txt": "contained"})

		err := ExtractArchive(archive, out, testLogger())
		require.NoError(t, err)

		// The entry is flattened to its base name inside the destination.
		content, err := os.ReadFile(filepath.Join(out, "evil.txt"))
		require.NoError(t, err)
		assert.Equal(t, "contained", string(content))
		assert.NoFileExists(t, filepath.Join(dir, "evil.txt"))
	})

	t.Run("creates the destination directory when missing", func(t *testing.T) {
		dir := t.TempDir()
		archive := filepath.Join(dir, "cities.txt.zip")
		writeZip(t, archive, map[string]string{"cities.txt": "x"})

		out := filepath.Join(dir, "fresh", "nested")
		require.NoError(t, ExtractArchive(archive, out, testLogger()))
		assert.FileExists(t, filepath.Join(out, "cities.txt"))
	})
}

// The upload pipeline extracts into the configured data directory and then
// reads <data-dir>/cities.txt; the two steps must agree for any directory,
// not just the default one.
func TestExtractArchiveFeedsReader_CustomDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "custom")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	archive := filepath.Join(dataDir, "cities.txt.zip")
	writeZip(t, archive, map[string]string{
		"data/cities.txt": "Country,City,Accent City,Region,Latitude,Longitude\n" +
			"fr,paris,Paris,A8,48.85,2.35\n",
	})

	require.NoError(t, ExtractArchive(archive, dataDir, testLogger()))

	cr, err := OpenCityFile(filepath.Join(dataDir, "cities.txt"))
	require.NoError(t, err)
	defer cr.Close()

	require.True(t, cr.Next())
	require.NoError(t, cr.Err())
	assert.Equal(t, "paris", cr.Record().City)
	assert.False(t, cr.Next())
}
