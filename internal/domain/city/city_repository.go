package city

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/geocity-bench/internal/types"
)

var _ Repository = (*RepositoryImpl)(nil)

// PGXQuerier is the subset of pgxpool.Pool the repository needs. Both
// *pgxpool.Pool and *pgxpool.Conn satisfy it, which lets the benchmark pin
// a single pooled connection for its whole run and lets tests substitute
// pgxmock.
type PGXQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository interface {
	InsertCities(ctx context.Context, cities []types.NewCity) error
	NearestCityIDs(ctx context.Context, point types.Point, limit int) ([]int64, error)
	GetCity(ctx context.Context, id int64) (*types.City, error)
	CountCities(ctx context.Context) (int64, error)
}

type RepositoryImpl struct {
	logger *slog.Logger
	db     PGXQuerier
}

func NewCityRepository(db PGXQuerier, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		db:     db,
	}
}

// InsertCities writes the given rows in one multi-row INSERT. The batch
// commits on its own; callers decide how to group rows into batches.
func (r *RepositoryImpl) InsertCities(ctx context.Context, cities []types.NewCity) error {
	ctx, span := otel.Tracer("CityRepository").Start(ctx, "InsertCities", trace.WithAttributes(
		attribute.Int("cities.count", len(cities)),
	))
	defer span.End()

	if len(cities) == 0 {
		span.SetStatus(codes.Ok, "Nothing to insert")
		return nil
	}

	builder := sq.Insert("cities").
		Columns("country", "city", "accent_city", "region", "location").
		PlaceholderFormat(sq.Dollar)
	for _, c := range cities {
		builder = builder.Values(
			c.Country,
			c.City,
			c.AccentCity,
			c.Region,
			// For ST_MakePoint, longitude is first, then latitude.
			sq.Expr("ST_SetSRID(ST_MakePoint(?, ?), ?)", c.Location.X, c.Location.Y, c.Location.SRID),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to build insert")
		return fmt.Errorf("failed to build cities insert: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert cities",
			slog.Any("error", err),
			slog.Int("count", len(cities)))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database insert failed")
		return fmt.Errorf("failed to insert %d cities: %w", len(cities), err)
	}

	span.SetAttributes(attribute.Int64("rows.affected", tag.RowsAffected()))
	span.SetStatus(codes.Ok, "Cities inserted")
	return nil
}

// NearestCityIDs returns the ids of the cities closest to point, ordered
// by planar distance, at most limit of them. An empty table yields an
// empty result, not an error.
func (r *RepositoryImpl) NearestCityIDs(ctx context.Context, point types.Point, limit int) ([]int64, error) {
	ctx, span := otel.Tracer("CityRepository").Start(ctx, "NearestCityIDs", trace.WithAttributes(
		attribute.Float64("point.x", point.X),
		attribute.Float64("point.y", point.Y),
		attribute.Int("limit", limit),
	))
	defer span.End()

	query := `
        SELECT id
        FROM cities
        ORDER BY location <-> ST_SetSRID(ST_MakePoint($1, $2), $3)
        LIMIT $4
    `

	rows, err := r.db.Query(ctx, query, point.X, point.Y, point.SRID, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query nearest cities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Database query failed")
		return nil, fmt.Errorf("failed to query nearest cities: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan nearest city row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating nearest city rows: %w", err)
	}

	r.logger.DebugContext(ctx, "Nearest cities found", slog.Int("count", len(ids)))
	span.SetAttributes(attribute.Int("results.count", len(ids)))
	span.SetStatus(codes.Ok, "Nearest cities found")
	return ids, nil
}

// GetCity retrieves one persisted row with its coordinates. Returns
// (nil, nil) when the id does not exist.
func (r *RepositoryImpl) GetCity(ctx context.Context, id int64) (*types.City, error) {
	query := `
        SELECT
            id, country, city, accent_city, region,
            ST_X(location) as longitude,
            ST_Y(location) as latitude,
            ST_SRID(location) as srid
        FROM cities
        WHERE id = $1
    `

	var c types.City
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Country,
		&c.City,
		&c.AccentCity,
		&c.Region,
		&c.Location.X,
		&c.Location.Y,
		&c.Location.SRID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get city %d: %w", id, err)
	}

	return &c, nil
}

// CountCities reports the number of persisted rows.
func (r *RepositoryImpl) CountCities(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cities`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cities: %w", err)
	}
	return count, nil
}
