package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = repo.db.WithTx(context.Background(), func(context.Context, DBTX) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	errFn := errors.New("fn failed")
	err := repo.db.WithTx(context.Background(), func(context.Context, DBTX) error {
		return errFn
	})
	assert.ErrorIs(t, err, errFn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RetriesSerializationFailure(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE counters").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE counters").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	attempts := 0
	err := repo.db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		attempts++
		_, err := tx.ExecContext(ctx, "UPDATE counters SET n = n + 1")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_DoesNotRetryConstraintViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	attempts := 0
	err := repo.db.WithTx(context.Background(), func(context.Context, DBTX) error {
		attempts++
		return pgError(pgerrcode.UniqueViolation)
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithConn_ReleasesConnection(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.db.WithConn(context.Background(), func(ctx context.Context, conn DBTX) error {
		_, err := conn.ExecContext(ctx, "SELECT 1")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.NotNullViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
