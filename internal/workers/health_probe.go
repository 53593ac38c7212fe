package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flix/internal/logger"
)

// DefaultHealthProbeInterval is how often the gRPC health status is
// re-evaluated.
const DefaultHealthProbeInterval = 15 * time.Second

// HealthProbe keeps the published health status in step with the Credential
// Store.
type HealthProbe struct {
	updater  StatusUpdater
	interval time.Duration

	logger *logger.Logger
}

func NewHealthProbe(updater StatusUpdater, interval time.Duration, logger *logger.Logger) *HealthProbe {
	if interval <= 0 {
		interval = DefaultHealthProbeInterval
	}
	return &HealthProbe{updater: updater, interval: interval, logger: logger}
}

func (p *HealthProbe) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			status := p.updater.UpdateStatus(ctx)
			p.logger.Debug().Str("status", status.String()).Msg("health status updated")
		}
	}
}
