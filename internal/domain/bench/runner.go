// Package bench runs the nearest-neighbor benchmark against the populated
// cities table.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/FACorreiaa/geocity-bench/internal/domain/city"
	"github.com/FACorreiaa/geocity-bench/internal/types"
	"github.com/FACorreiaa/geocity-bench/pkg/observability"
)

const (
	// DefaultIterations is the number of nearest-neighbor queries per run.
	DefaultIterations = 500
	// DefaultLimit is the number of neighbors requested per query.
	DefaultLimit = 500
)

// PointRange bounds uniform random point generation. X is longitude and Y
// is latitude; keeping the two ranges named avoids swapping them by
// argument position.
type PointRange struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// WGS84Range covers the full geographic domain: longitude in [-180, 180)
// and latitude in [-90, 90).
func WGS84Range() PointRange {
	return PointRange{MinX: -180, MaxX: 180, MinY: -90, MaxY: 90}
}

// RandomPoint draws a uniform point with x in [MinX, MaxX) and y in
// [MinY, MaxY).
func (pr PointRange) RandomPoint(rng *rand.Rand) types.Point {
	x := pr.MinX + rng.Float64()*(pr.MaxX-pr.MinX)
	y := pr.MinY + rng.Float64()*(pr.MaxY-pr.MinY)
	return types.NewWGS84Point(x, y)
}

// Runner issues repeated "nearest N by distance" queries from random
// points and accumulates total wall-clock time. It holds whatever querier
// the repository was built over for the whole run, so a caller that wants
// a single pinned connection passes a repository built on *pgxpool.Conn.
type Runner struct {
	repo       city.Repository
	logger     *slog.Logger
	iterations int
	limit      int
	area       PointRange
	rng        *rand.Rand
}

func NewRunner(repo city.Repository, logger *slog.Logger, iterations, limit int) *Runner {
	return &Runner{
		repo:       repo,
		logger:     logger,
		iterations: iterations,
		limit:      limit,
		area:       WGS84Range(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the benchmark loop and returns the total elapsed wall-clock
// time across all iterations. Results are retrieved and discarded; the
// first query error aborts the run.
func (r *Runner) Run(ctx context.Context) (time.Duration, error) {
	r.logger.Info("benchmark starting",
		slog.Int("iterations", r.iterations),
		slog.Int("limit", r.limit))

	start := time.Now()
	for i := 0; i < r.iterations; i++ {
		point := r.area.RandomPoint(r.rng)

		queryStart := time.Now()
		ids, err := r.repo.NearestCityIDs(ctx, point, r.limit)
		if err != nil {
			return time.Since(start), fmt.Errorf("nearest-neighbor query %d failed: %w", i+1, err)
		}
		observability.BenchQueryDuration.Observe(time.Since(queryStart).Seconds())

		r.logger.Debug("query completed",
			slog.Int("iteration", i+1),
			slog.Float64("x", point.X),
			slog.Float64("y", point.Y),
			slog.Int("results", len(ids)))
	}

	elapsed := time.Since(start)
	r.logger.Info("benchmark finished", slog.Duration("elapsed", elapsed))
	return elapsed, nil
}
