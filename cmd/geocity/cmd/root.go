// Package cmd defines the geocity command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/geocity-bench/internal/app"
	"github.com/FACorreiaa/geocity-bench/pkg/config"
)

// Execute runs the root command. Any fatal condition surfaces here as a
// non-zero exit; the library packages below only return errors.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "geocity",
		Short:        "Load the cities dataset into PostGIS and benchmark nearest-neighbor queries",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("data-dir", "./data", "directory holding cities.txt.zip and the extracted cities.txt")

	cmd.AddCommand(uploadCmd())
	cmd.AddCommand(benchCmd())
	return cmd
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// initDependencies loads configuration and connects the pool. Called by
// each subcommand so the pool is only built when a command actually runs.
func initDependencies(cmd *cobra.Command) (*app.Dependencies, error) {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if dataDir, err := cmd.Flags().GetString("data-dir"); err == nil && dataDir != "" {
		cfg.DataDir = dataDir
	}

	deps, err := app.InitDependencies(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Both commands run long, uninterruptible work; verify connectivity
	// up front rather than failing mid-load.
	if err := deps.DB.Health(); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	return deps, nil
}
