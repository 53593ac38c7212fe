package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flix/internal/adapter"
	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/session"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/tui"
	"github.com/MKhiriev/go-flix/models"
)

type App struct {
	storages *store.ClientStorages
	backend  *stubBackend
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp opens the session database, restores the session and connects the
// UI to the backend selected by cfg.Adapter.Mode.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess, err := session.Load(ctx, storages.LocalStorage, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	a := &App{storages: storages, logger: log}

	var serverAdapter adapter.ServerAdapter
	switch cfg.Adapter.Mode {
	case config.AdapterModeStub:
		a.backend, err = newStubBackend(ctx, cfg, buildInfo.Version(), log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create stub backend: %w", err)
		}
		serverAdapter = adapter.NewInProcessServerAdapter(a.backend.handler, cfg.Adapter, log)
	default:
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
	}
	log.Info().Str("mode", cfg.Adapter.Mode).Bool("has_session", sess.IsAuthenticated()).Msg("client initialized")

	services := service.NewClientServices(sess, serverAdapter, log)
	a.ui = tui.New(services, catalog.Images{BaseURL: cfg.Catalog.ImageBaseURL}, buildInfo, log)

	return a, nil
}

// Run blocks until the user quits. Quitting with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// Close releases the session database and the stub backend, if any.
func (a *App) Close() error {
	var errs []error
	if a.backend != nil {
		errs = append(errs, a.backend.Close())
	}
	errs = append(errs, a.storages.Close())
	return errors.Join(errs...)
}
