package db

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries, "migration set must not be empty")

	for _, name := range entries {
		content, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", "%s must carry goose annotations", name)
		assert.Contains(t, string(content), "-- +goose Down", "%s must carry goose annotations", name)
	}

	schema, err := fs.ReadFile(Migrations, "00001_create_cities.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "geometry(Point, 4326)")
}
