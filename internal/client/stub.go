package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/config"
	handler "github.com/MKhiriev/go-flix/internal/handler/http"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/store"
)

// stubBackend is the full API stack running inside the client process with
// an in-memory Credential Store. Accounts live as long as the process.
type stubBackend struct {
	handler  http.Handler
	storages *store.Storages
	cache    catalog.Cache
}

func newStubBackend(ctx context.Context, cfg *config.ClientConfig, version string, log *logger.Logger) (*stubBackend, error) {
	serverCfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			BcryptCost:    cfg.App.BcryptCost,
			Version:       version,
			LogLevel:      cfg.App.LogLevel,
		},
		Storage: config.Storage{
			DB:    config.DB{Driver: config.DriverMemory},
			Cache: config.Cache{TTL: cfg.Cache.TTL},
		},
		Server: config.Server{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Catalog: cfg.Catalog,
	}

	storages, err := store.NewStorages(ctx, serverCfg.Storage, log)
	if err != nil {
		return nil, err
	}

	cache := catalog.NewMemoryCache()
	services, err := service.NewServices(storages, catalog.NewTMDBClient(serverCfg.Catalog, log), cache, serverCfg, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create services: %w", err), storages.Close())
	}

	return &stubBackend{
		handler:  handler.NewHandler(services, serverCfg.Server, log).Init(),
		storages: storages,
		cache:    cache,
	}, nil
}

func (b *stubBackend) Close() error {
	return errors.Join(b.cache.Close(), b.storages.Close())
}
