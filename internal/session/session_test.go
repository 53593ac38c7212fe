package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/mock"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/models"
)

var alice = models.PublicUser{UserID: 1, UserName: "alice", Email: "a@x.io"}

func openStorage(t *testing.T, dsn string) store.LocalStorage {
	t.Helper()
	s, err := store.NewClientStorages(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s.LocalStorage
}

func TestSession_EmptyStorage(t *testing.T) {
	sess, err := Load(context.Background(), openStorage(t, filepath.Join(t.TempDir(), "client.db")), logger.Nop())
	require.NoError(t, err)

	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
	_, ok := sess.CurrentUser()
	assert.False(t, ok)
}

func TestSession_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	first, err := Load(ctx, openStorage(t, dsn), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SetAuthData(ctx, "tkn", alice))
	assert.True(t, first.IsAuthenticated())

	reloaded, err := Load(ctx, openStorage(t, dsn), logger.Nop())
	require.NoError(t, err)

	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "tkn", reloaded.Token())
	user, ok := reloaded.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, alice, user)
}

func TestSession_LogoutClearsStorage(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")
	storage := openStorage(t, dsn)

	sess, err := Load(ctx, storage, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, sess.SetAuthData(ctx, "tkn", alice))
	require.NoError(t, sess.Logout(ctx))

	assert.False(t, sess.IsAuthenticated())
	for _, key := range []string{TokenKey, UserKey} {
		_, ok, err := storage.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	reloaded, err := Load(ctx, openStorage(t, dsn), logger.Nop())
	require.NoError(t, err)
	assert.False(t, reloaded.IsAuthenticated())
}

func TestSession_CorruptUserIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	storage := openStorage(t, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, storage.SetMany(ctx, map[string]string{TokenKey: "tkn", UserKey: "{broken"}))

	sess, err := Load(ctx, storage, logger.Nop())
	require.NoError(t, err)

	assert.False(t, sess.IsAuthenticated())
	_, ok, err := storage.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_TokenWithoutUserIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	storage := openStorage(t, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, storage.SetMany(ctx, map[string]string{TokenKey: "tkn"}))

	sess, err := Load(ctx, storage, logger.Nop())
	require.NoError(t, err)

	assert.False(t, sess.IsAuthenticated())
}

func TestSession_SetAuthDataFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockLocalStorage(ctrl)
	ctx := context.Background()

	storage.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil).Times(2)
	storage.EXPECT().SetMany(ctx, gomock.Any()).Return(errors.New("disk full"))

	sess, err := Load(ctx, storage, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, sess.SetAuthData(ctx, "tkn", alice))
	assert.False(t, sess.IsAuthenticated())
}

func TestSession_SetAuthDataRejectsEmptyToken(t *testing.T) {
	ctx := context.Background()
	sess, err := Load(ctx, openStorage(t, filepath.Join(t.TempDir(), "client.db")), logger.Nop())
	require.NoError(t, err)

	assert.Error(t, sess.SetAuthData(ctx, "", alice))
}

func TestSession_LoadStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockLocalStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), TokenKey).Return("", false, errors.New("locked"))

	_, err := Load(context.Background(), storage, logger.Nop())

	assert.Error(t, err)
}

func TestSession_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	sess, err := Load(ctx, openStorage(t, filepath.Join(t.TempDir(), "client.db")), logger.Nop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = sess.SetAuthData(ctx, "tkn", alice)
		}()
		go func() {
			defer wg.Done()
			_ = sess.IsAuthenticated()
			_, _ = sess.CurrentUser()
		}()
	}
	wg.Wait()

	assert.True(t, sess.IsAuthenticated())
}
