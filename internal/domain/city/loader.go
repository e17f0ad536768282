package city

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/geocity-bench/internal/types"
	"github.com/FACorreiaa/geocity-bench/pkg/observability"
)

// DefaultBatchSize is the number of rows accumulated before each bulk
// insert.
const DefaultBatchSize = 10000

// RecordSource is the lazy row sequence produced by the dataset package.
// It is single-pass: once Next returns false the source is exhausted or
// failed, and Err distinguishes the two.
type RecordSource interface {
	Next() bool
	Record() types.CityRecord
	Err() error
}

// LoaderService consumes a record source and writes it to the cities table
// in fixed-size batches. Each batch commits independently; the first
// failure aborts the remaining load and already-inserted batches stay
// committed.
type LoaderService struct {
	repo      Repository
	logger    *slog.Logger
	batchSize int
}

func NewLoaderService(repo Repository, logger *slog.Logger) *LoaderService {
	return &LoaderService{
		repo:      repo,
		logger:    logger,
		batchSize: DefaultBatchSize,
	}
}

// Load streams src into the database and returns the number of rows
// written. Zero input rows issue zero inserts; a trailing partial batch is
// flushed after the source is exhausted.
func (s *LoaderService) Load(ctx context.Context, src RecordSource) (int64, error) {
	batch := make([]types.NewCity, 0, s.batchSize)
	var total int64
	batchNum := 0

	flush := func() error {
		batchNum++
		s.logger.Info("inserting batch",
			slog.Int("batch", batchNum),
			slog.Int("rows", len(batch)))

		if err := s.repo.InsertCities(ctx, batch); err != nil {
			return fmt.Errorf("failed to insert batch %d: %w", batchNum, err)
		}

		observability.RowsInserted.Add(float64(len(batch)))
		observability.BatchesInserted.Inc()
		total += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for src.Next() {
		batch = append(batch, src.Record().ToNewCity())
		if len(batch) == s.batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := src.Err(); err != nil {
		// A malformed row aborts before its batch is sent.
		return total, fmt.Errorf("failed to read city records: %w", err)
	}

	if len(batch) > 0 {
		if err := flush(); err != nil {
			return total, err
		}
	}

	s.logger.Info("load complete",
		slog.Int64("rows", total),
		slog.Int("batches", batchNum))
	return total, nil
}
