// Package app wires the CLI's dependencies together.
package app

import (
	"fmt"
	"log/slog"

	cityrepo "github.com/FACorreiaa/geocity-bench/internal/domain/city"
	"github.com/FACorreiaa/geocity-bench/pkg/config"
	"github.com/FACorreiaa/geocity-bench/pkg/db"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	DB     *db.DB
	Logger *slog.Logger

	CityRepo cityrepo.Repository
	Loader   *cityrepo.LoaderService
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN(),
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}
	deps.DB = database

	deps.CityRepo = cityrepo.NewCityRepository(database.Pool, logger)
	deps.Loader = cityrepo.NewLoaderService(deps.CityRepo, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.DB != nil {
		d.DB.Close()
	}
	d.Logger.Info("cleanup completed")
}
