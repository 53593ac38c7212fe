package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-flix/internal/logger"
)

type localStorageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStorageRepository returns a [LocalStorage] over the local_storage
// table of db.
func NewLocalStorageRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &localStorageRepository{db: db, logger: logger}
}

func (r *localStorageRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetLocalValueQuery(r.db.builder(), key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localStorageRepository.Get").Str("key", key).Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *localStorageRepository) SetMany(ctx context.Context, values map[string]string) error {
	// sorted for a deterministic statement order
	keys := slices.Sorted(maps.Keys(values))

	return r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, key := range keys {
			query, args, err := buildUpsertLocalValueQuery(r.db.builder(), key, values[key])
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				r.logger.Err(err).Str("func", "*localStorageRepository.SetMany").Str("key", key).Msg("error writing value")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}
		return nil
	})
}

func (r *localStorageRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteLocalValuesQuery(r.db.builder(), keys)
	if err != nil {
		return err
	}

	return r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).Str("func", "*localStorageRepository.Delete").Msg("error deleting values")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
}
