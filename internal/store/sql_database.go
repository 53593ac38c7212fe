// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/migrations"
)

// DBTX is the subset of database/sql used by the repositories.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrations         migrations.Set
	placeholder        sq.PlaceholderFormat
	logger             *logger.Logger
}

// Migrate applies the dialect's embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrations)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

const (
	txRetries      = 2
	txRetryBackoff = 20 * time.Millisecond
)

// WithTx runs fn in a transaction. A failure the dialect classifies as
// [Retryable] (serialization failure, deadlock, busy SQLite file) reruns the
// whole transaction up to txRetries times, so fn must not keep state between
// attempts.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	backoff := retry.WithMaxRetries(txRetries, retry.NewExponential(txRetryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Msg("retrying transaction")
			return retry.RetryableError(err)
		}
		return err
	})
}

// runTx begins a transaction, runs fn with it, and commits on success.
// The transaction is rolled back when fn returns an error or panics; panics
// are rethrown.
func (db *DB) runTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	return fn(ctx, tx)
}

// WithConn takes a dedicated connection from the pool for the duration of
// fn and returns it on every exit path.
func (db *DB) WithConn(ctx context.Context, fn func(ctx context.Context, conn DBTX) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}
