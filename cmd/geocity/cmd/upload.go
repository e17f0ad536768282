package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/geocity-bench/internal/dataset"
	"github.com/FACorreiaa/geocity-bench/pkg/db"
	"github.com/FACorreiaa/geocity-bench/pkg/observability"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Extract the cities archive and bulk-load it into the cities table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := initDependencies(cmd)
			if err != nil {
				return err
			}
			defer deps.Cleanup()

			logger := deps.Logger.With(slog.String("run_id", uuid.New().String()))

			if err := deps.DB.RunMigrations(ctx, db.Migrations); err != nil {
				return err
			}

			archivePath := filepath.Join(deps.Config.DataDir, "cities.txt.zip")
			if err := dataset.ExtractArchive(archivePath, deps.Config.DataDir, logger); err != nil {
				return err
			}

			src, err := dataset.OpenCityFile(filepath.Join(deps.Config.DataDir, "cities.txt"))
			if err != nil {
				return err
			}
			defer src.Close()

			total, err := deps.Loader.Load(ctx, src)
			if err != nil {
				return err
			}

			logger.Info("upload complete", slog.Int64("rows", total))
			observability.LogSummary(logger)
			return nil
		},
	}
}
