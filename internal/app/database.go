// Package app provides database initialization.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/expedibox/colis-service/config"
	"github.com/expedibox/colis-service/internal/repository"
)

// InitializeDatabase opens the embedded SQLite store, applies the schema
// and seeds default reference data on first run.
func InitializeDatabase(ctx context.Context, cfg config.DatabaseConfig) (*repository.Store, error) {
	store, err := repository.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if cfg.Seed {
		if err := store.Seed(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	log.Info().Str("path", cfg.Path).Msg("Database ready")
	return store, nil
}
