package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/consent-bridge/internal/adapter"
	"github.com/MKhiriev/consent-bridge/internal/config"
	"github.com/MKhiriev/consent-bridge/internal/handler"
	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/server"
	"github.com/MKhiriev/consent-bridge/internal/service"
	"github.com/MKhiriev/consent-bridge/internal/store"
	"github.com/MKhiriev/consent-bridge/internal/workers"
	"github.com/MKhiriev/consent-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	log := logger.NewLogger("consent-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("platform", cfg.App.Platform).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	// builds without ldflags report the configured version
	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	native, err := adapter.NewHTTPNativeAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating native sdk adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(native, storages, buildInfo, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(
		workers.NewDiagnosticsJob(services.ConsentClient, services.SupportService, cfg.Workers.DiagnosticsInterval, log),
	)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
