package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-flix/internal/catalog"
	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/handler"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/server"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/workers"
	"github.com/MKhiriev/go-flix/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-flix-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeWithLog(log, "storages", storages.Close)

	cache, err := catalog.NewCache(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog cache")
	}
	defer closeWithLog(log, "catalog cache", cache.Close)

	tmdb := catalog.NewTMDBClient(cfg.Catalog, log)
	if !tmdb.Configured() {
		log.Warn().Msg("CATALOG_API_KEY is not set, movie routes will answer 502")
	}

	services, err := service.NewServices(storages, tmdb, cache, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.Health, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(log,
		workers.NewCatalogWarmer(services.CatalogService, cfg.Workers.CatalogRefreshInterval, tmdb.Configured(), log),
	)
	if handlers.GRPC != nil {
		bg.Add(workers.NewHealthProbe(handlers.GRPC, workers.DefaultHealthProbeInterval, log))
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func closeWithLog(log *logger.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("resource", name).Msg("close failed")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
