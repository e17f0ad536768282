package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/geocity-bench/internal/domain/bench"
	cityrepo "github.com/FACorreiaa/geocity-bench/internal/domain/city"
	"github.com/FACorreiaa/geocity-bench/pkg/observability"
)

func benchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark nearest-neighbor queries against the cities table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			deps, err := initDependencies(cmd)
			if err != nil {
				return err
			}
			defer deps.Cleanup()

			iterations, err := cmd.Flags().GetInt("iterations")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			// The whole run uses one pinned connection rather than
			// re-acquiring per query.
			conn, err := deps.DB.Pool.Acquire(ctx)
			if err != nil {
				return fmt.Errorf("failed to acquire connection: %w", err)
			}
			defer conn.Release()

			repo := cityrepo.NewCityRepository(conn, deps.Logger)
			runner := bench.NewRunner(repo, deps.Logger, iterations, limit)

			elapsed, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "elapsed %s\n", elapsed)
			observability.LogSummary(deps.Logger)
			return nil
		},
	}

	cmd.Flags().Int("iterations", bench.DefaultIterations, "number of benchmark queries to run")
	cmd.Flags().Int("limit", bench.DefaultLimit, "nearest neighbors requested per query")
	return cmd
}
