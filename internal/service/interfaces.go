package service

import (
	"context"

	"github.com/MKhiriev/zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ShapeService is the sync mediator: the single entry point through
// which all other layers read and mutate the shape collection. Every
// mutation lands in the local store first and is then mirrored to the
// remote store when the current store mode allows it. A failed mirror is
// logged and swallowed; the local write is never rolled back. All
// operations share one serialization gate with Reconcile, so a call
// issued while a reconciliation is in flight parks until it completes.
type ShapeService interface {
	// Load returns the active shapes. Remote-only shapes are merged
	// into the local store first when the store mode allows it.
	Load(ctx context.Context) ([]models.Shape, error)

	// SaveAll validates and replaces the whole local collection, then
	// mirrors it remotely. A backup snapshot is written first.
	SaveAll(ctx context.Context, shapes []models.Shape) error

	// Add validates and stores a new shape, assigning an id and
	// timestamps when missing. Returns the stored shape.
	Add(ctx context.Context, shape models.Shape) (models.Shape, error)

	// Update validates and overwrites an existing shape, refreshing its
	// UpdatedAt stamp.
	Update(ctx context.Context, shape models.Shape) (models.Shape, error)

	// Remove hard-deletes locally and soft-deletes remotely.
	Remove(ctx context.Context, id string) error

	// DeleteExpired purges shapes whose flight end date has passed.
	// Returns the number of locally removed shapes.
	DeleteExpired(ctx context.Context) (int64, error)

	// SetColor recolors every active shape to one color and records the
	// color change timestamp used by cross-device color unification.
	SetColor(ctx context.Context, color string) error

	// Reconcile runs a full merge between the local and remote
	// collections in the given direction. Concurrent calls queue on the
	// serialization gate; they never overlap.
	Reconcile(ctx context.Context, op models.SyncOp) error

	// VerifyDataIntegrity runs a read-only consistency check over the
	// local collection.
	VerifyDataIntegrity(ctx context.Context) models.IntegrityReport

	// EmergencyRestore repopulates the local store from the newest
	// backup snapshot, falling back to the remote store when no usable
	// snapshot exists.
	EmergencyRestore(ctx context.Context) ([]models.Shape, error)

	// Status returns a snapshot of the sync status state machine.
	Status() models.SyncStatus

	// Mode returns the currently resolved store mode.
	Mode() models.StoreMode

	// Close releases the mediator's timers. Pending debounced mode
	// switches are dropped.
	Close()
}

// SyncJob periodically re-runs reconciliation as a safety net for
// mirrored writes that were swallowed while the remote store was
// unreachable.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
}
