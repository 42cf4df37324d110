package service

import (
	"github.com/MKhiriev/zone-keeper/internal/adapter"
	"github.com/MKhiriev/zone-keeper/internal/auth"
	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/internal/validators"
)

// Services bundles the constructed service layer for DI at startup.
type Services struct {
	Shapes ShapeService
	Job    SyncJob
}

func NewServices(
	storages *store.Storages,
	remote adapter.RemoteStore,
	session auth.Session,
	bus *events.Bus,
	cfg config.Sync,
	log *logger.Logger,
) *Services {
	validator := validators.NewShapeValidator()
	shapes := NewShapeService(storages, remote, session, validator, bus, cfg, log)

	return &Services{
		Shapes: shapes,
		Job:    NewSyncJob(shapes, storages.Settings, cfg.JobInterval, log),
	}
}
