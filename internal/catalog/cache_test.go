package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
)

func TestNewCache_Memory(t *testing.T) {
	cache, err := NewCache(context.Background(), config.Cache{}, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, cache)
	assert.NoError(t, cache.Close())
}

func TestNewCache_BadRedisURL(t *testing.T) {
	_, err := NewCache(context.Background(), config.Cache{RedisURL: "http://not-redis"}, logger.Nop())

	assert.ErrorIs(t, err, ErrCache)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0")

	assert.ErrorIs(t, err, ErrCache)
}
