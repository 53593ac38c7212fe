package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-flix/internal/client"
	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the TUI
	log := logger.NewClientLogger("go-flix-client", cfg.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Err(err).Msg("client close error")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", runErr)
		os.Exit(1)
	}
}
