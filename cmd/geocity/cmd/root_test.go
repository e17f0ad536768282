package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := RootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "upload")
	assert.Contains(t, names, "bench")

	dataDir, err := root.PersistentFlags().GetString("data-dir")
	require.NoError(t, err)
	assert.Equal(t, "./data", dataDir)
}

func TestBenchCmdFlagDefaults(t *testing.T) {
	cmd := benchCmd()

	iterations, err := cmd.Flags().GetInt("iterations")
	require.NoError(t, err)
	assert.Equal(t, 500, iterations)

	limit, err := cmd.Flags().GetInt("limit")
	require.NoError(t, err)
	assert.Equal(t, 500, limit)
}
