package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

// heroSize is how many trending titles rotate in the hero banner.
const heroSize = 5

type clientCatalogService struct {
	session ClientSession
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientCatalogService(session ClientSession, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{session: session, adapter: serverAdapter, logger: logger}
}

func (s *clientCatalogService) Home(ctx context.Context) (models.HomePage, error) {
	if !s.session.IsAuthenticated() {
		return models.HomePage{}, ErrUnauthenticated
	}
	token := s.session.Token()

	var mu sync.Mutex
	rows := make(map[models.MovieCategory][]models.Movie, len(models.MovieCategories))

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range models.MovieCategories {
		g.Go(func() error {
			movies, err := s.adapter.Movies(gctx, token, category)
			if err != nil {
				return fmt.Errorf("load %s: %w", category, err)
			}
			mu.Lock()
			rows[category] = movies
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn().Err(err).Msg("home page load failed")
		return models.HomePage{}, s.mapErr(err)
	}

	hero := rows[models.Trending]
	if len(hero) > heroSize {
		hero = hero[:heroSize]
	}

	return models.HomePage{Hero: hero, Rows: rows}, nil
}

func (s *clientCatalogService) Details(ctx context.Context, movieID int64) (models.MovieDetails, error) {
	if !s.session.IsAuthenticated() {
		return models.MovieDetails{}, ErrUnauthenticated
	}

	details, err := s.adapter.MovieDetails(ctx, s.session.Token(), movieID)
	if err != nil {
		return models.MovieDetails{}, s.mapErr(err)
	}
	return details, nil
}

func (s *clientCatalogService) mapErr(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return err
}
