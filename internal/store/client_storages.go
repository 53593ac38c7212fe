package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/migrations"
)

// ClientStorages groups all client-side storage repositories.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed key/value table holding the session.
	LocalStorage LocalStorage

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite database at dsn,
// applies the client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, dsn, migrations.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorageRepository(db, logger),
		db:           db,
	}, nil
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
