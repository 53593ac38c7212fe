// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/migrations"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	// Health reports the reachability of the Credential Store.
	Health HealthChecker

	db *DB
}

// NewStorages opens the Credential Store selected by cfg.DB.Driver and
// applies its migrations. The memory driver needs no connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		repo := NewMemoryUserRepository(log)
		return &Storages{
			UserRepository: repo,
			Health:         repo.(HealthChecker),
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, migrations.SQLite, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		Health:         db,
		db:             db,
	}, nil
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
