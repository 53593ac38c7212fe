package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-flix/internal/logger"
)

// Workers runs a set of workers side by side.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add registers more workers. It must be called before Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker and waits for all of them. The first failing
// worker cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	w.logger.Info().Int("count", len(w.workers)).Msg("starting workers")

	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	err := g.Wait()
	w.logger.Info().Err(err).Msg("workers stopped")
	return err
}
