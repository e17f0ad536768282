//go:build integration

package db

import (
	"log/slog"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func TestDB_Health_Integration(t *testing.T) {
	_ = godotenv.Load("../../.env.test")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable is not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	database, err := New(Config{DSN: dsn, MaxConns: 2, MinConns: 1}, logger)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Health())
}
