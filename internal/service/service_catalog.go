package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

const (
	listCacheKeyPrefix  = "go-flix:catalog:list:"
	movieCacheKeyPrefix = "go-flix:catalog:movie:"
)

// catalogService is a read-through cache in front of a catalog.Client.
// Cache failures are logged and never fail a request.
type catalogService struct {
	client catalog.Client
	cache  catalog.Cache
	ttl    time.Duration

	logger *logger.Logger
}

func NewCatalogService(client catalog.Client, cache catalog.Cache, ttl time.Duration, logger *logger.Logger) CatalogService {
	return &catalogService{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *catalogService) List(ctx context.Context, category models.MovieCategory) ([]models.Movie, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	var movies []models.Movie
	if s.fromCache(ctx, listCacheKeyPrefix+string(category), &movies) {
		return movies, nil
	}

	return s.fetchList(ctx, category)
}

func (s *catalogService) Refresh(ctx context.Context, category models.MovieCategory) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	_, err := s.fetchList(ctx, category)
	return err
}

func (s *catalogService) Details(ctx context.Context, movieID int64) (models.MovieDetails, error) {
	if movieID <= 0 {
		return models.MovieDetails{}, fmt.Errorf("%w: %d", ErrInvalidMovieID, movieID)
	}

	key := movieCacheKeyPrefix + strconv.FormatInt(movieID, 10)

	var details models.MovieDetails
	if s.fromCache(ctx, key, &details) {
		return details, nil
	}

	details, err := s.client.MovieDetails(ctx, movieID)
	if errors.Is(err, catalog.ErrMovieNotFound) {
		return models.MovieDetails{}, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("movie_id", movieID).Msg("catalog details request failed")
		return models.MovieDetails{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	s.toCache(ctx, key, details)
	return details, nil
}

func (s *catalogService) fetchList(ctx context.Context, category models.MovieCategory) ([]models.Movie, error) {
	page, err := s.client.List(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", string(category)).Msg("catalog list request failed")
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	movies := page.Results
	if movies == nil {
		movies = []models.Movie{}
	}

	s.toCache(ctx, listCacheKeyPrefix+string(category), movies)
	return movies, nil
}

func (s *catalogService) fromCache(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache entry is corrupt")
		return false
	}
	return true
}

func (s *catalogService) toCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache encode failed")
		return
	}
	if err = s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
