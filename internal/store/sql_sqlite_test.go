package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/migrations"
	"github.com/MKhiriev/go-flix/models"
)

func newSQLiteUserRepo(t *testing.T) UserRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), sqliteMemoryDSN, migrations.SQLite, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewUserRepository(db, logger.Nop())
}

func TestSQLiteUserRepository_CreateAndFind(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	phone := "555-0100"
	created, err := repo.CreateUser(ctx, models.User{
		UserName:     "alice",
		Email:        "a@x.com",
		PhoneNumber:  &phone,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)

	found, err := repo.FindUserByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "a@x.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)
	require.NotNil(t, found.PhoneNumber)
	assert.Equal(t, phone, *found.PhoneNumber)
	assert.WithinDuration(t, created.CreatedAt, found.CreatedAt, 0)
}

func TestSQLiteUserRepository_Uniqueness(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{UserName: "alice", Email: "other@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists, "same user name")

	_, err = repo.CreateUser(ctx, models.User{UserName: "bob", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists, "same email")

	_, err = repo.FindUserByUserName(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound, "failed register leaves no row")
}

func TestSQLiteUserRepository_ConcurrentRegister(t *testing.T) {
	repo := newSQLiteUserRepo(t)
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, models.User{UserName: "alice", Email: "a@x.com", PasswordHash: "h"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrUserAlreadyExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
}

func TestSQLiteErrorClassifier_IsUniqueViolation(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.False(t, c.IsUniqueViolation(nil))
	assert.False(t, c.IsUniqueViolation(errors.New("disk I/O error")))
	assert.True(t, c.IsUniqueViolation(errors.New("UNIQUE constraint failed: users.email")))
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "flix.db")

	db, err := NewConnectSQLite(context.Background(), path, migrations.SQLite, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
	assert.NoError(t, db.Ping(context.Background()))
}
