package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/client"
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/internal/tui"
	"github.com/MKhiriev/consent-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("consent-bridge-support")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	bridge, err := adapter.NewHTTPBridgeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create bridge adapter")
	}

	services := service.NewClientServices(bridge, *cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
