package catalog

import (
	"context"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
)

// NewCache returns a [RedisCache] when cfg.RedisURL is set and a
// [MemoryCache] otherwise.
func NewCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("catalog cache: in-process")
		return NewMemoryCache(), nil
	}

	cache, err := NewRedisCache(ctx, cfg.RedisURL)
	if err != nil {
		log.Err(err).Msg("catalog cache: redis unavailable")
		return nil, err
	}

	log.Info().Msg("catalog cache: redis")
	return cache, nil
}
