package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/models"
)

// CatalogWarmer periodically refreshes the cached movie lists so that the
// first page load after a cache expiry is served without a catalog round
// trip.
type CatalogWarmer struct {
	catalog  service.CatalogService
	interval time.Duration
	enabled  bool

	logger *logger.Logger
}

// NewCatalogWarmer returns a warmer refreshing every interval. It is disabled
// when interval is not positive or catalogConfigured is false.
func NewCatalogWarmer(catalog service.CatalogService, interval time.Duration, catalogConfigured bool, logger *logger.Logger) *CatalogWarmer {
	return &CatalogWarmer{
		catalog:  catalog,
		interval: interval,
		enabled:  interval > 0 && catalogConfigured,
		logger:   logger,
	}
}

// Run refreshes all categories at once and then on every tick until ctx is
// done. Refresh failures are logged and retried on the next tick.
func (w *CatalogWarmer) Run(ctx context.Context) error {
	if !w.enabled {
		w.logger.Info().Msg("catalog warmer is disabled")
		return nil
	}

	w.logger.Info().Dur("interval", w.interval).Msg("catalog warmer started")

	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("catalog warmer stopped")
			return nil
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

func (w *CatalogWarmer) refreshAll(ctx context.Context) {
	for _, category := range models.MovieCategories {
		if ctx.Err() != nil {
			return
		}
		if err := w.catalog.Refresh(ctx, category); err != nil {
			w.logger.Warn().Err(err).Str("category", string(category)).Msg("catalog refresh failed")
		}
	}
}
