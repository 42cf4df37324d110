package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/zone-keeper/internal/adapter"
	"github.com/MKhiriev/zone-keeper/internal/auth"
	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/service"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/internal/validators"
	"github.com/MKhiriev/zone-keeper/internal/watcher"
	"github.com/MKhiriev/zone-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("zone-keeper")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.LogToFile {
		log = logger.NewFileLogger("zone-keeper")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	colors := store.NewSettingsColorState(storages.Settings)
	remote, err := adapter.NewHTTPRemoteStore(cfg.Remote, cfg.Sync, validators.NewShapeValidator(), colors, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store adapter")
	}

	session, err := auth.NewSession(ctx, storages.Settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("restore session state")
	}

	bus := events.NewBus(cfg.Sync.EventDebounce, log)
	defer bus.Close()

	services := service.NewServices(storages, remote, session, bus, cfg.Sync, log)
	defer services.Shapes.Close()

	realtime := watcher.New(remote, services.Shapes, session, storages.Settings, cfg.Sync, log)

	background := workers.New(services.Job, realtime)
	background.Start(ctx)
	defer background.Stop()

	log.Info().
		Str("mode", string(services.Shapes.Mode())).
		Msg("zone-keeper engine started")

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
