package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the network-accessible per-user shape collection plus
// its SyncMetadata document. Every write validates first, retries
// transient failures with a linearly increasing delay, and bumps the
// metadata document on success. Deletes are soft: documents are merged
// with a deletedAt timestamp, never physically removed.
type RemoteStore interface {
	// SetToken stores the bearer token used on all subsequent requests.
	SetToken(token string)

	// LoadShapes returns only shapes with deletedAt == nil. The color
	// unification step runs on the result before it is returned.
	LoadShapes(ctx context.Context, uid string) ([]models.Shape, error)

	// LoadAllShapes returns every shape including tombstones. Used by
	// the realtime watcher, which must see deletions to propagate them.
	LoadAllShapes(ctx context.Context, uid string) ([]models.Shape, error)

	// SaveShapes performs validated, batched upserts (at most
	// maxBatchSize documents per round trip) and bumps the metadata.
	SaveShapes(ctx context.Context, uid string, shapes []models.Shape) error

	AddShape(ctx context.Context, uid string, shape models.Shape) error
	UpdateShape(ctx context.Context, uid string, shape models.Shape) error

	// RemoveShape merges deletedAt = now into the existing document.
	RemoveShape(ctx context.Context, uid string, id string) error

	// DeleteExpiredShapes tombstones every non-deleted shape whose
	// flight end date has passed. Returns the number of tombstoned
	// shapes.
	DeleteExpiredShapes(ctx context.Context, uid string) (int, error)

	LoadMetadata(ctx context.Context, uid string) (models.SyncMetadata, error)

	// RecordColorChange writes at as the remote lastColorChange timestamp
	// so other devices' color unification sees this device's recolor.
	RecordColorChange(ctx context.Context, uid string, at time.Time) error

	// SubscribeMetadata opens a long-lived stream of SyncMetadata
	// updates. The returned channel is closed when the stream breaks or
	// ctx is cancelled; the caller owns reconnection.
	SubscribeMetadata(ctx context.Context, uid string) (<-chan models.SyncMetadata, error)

	// LastOwnWrite returns the metadata timestamp recorded after this
	// device's most recent successful remote write, so the watcher can
	// tell its own writes apart from other devices'.
	LastOwnWrite() time.Time
}

// ColorState supplies the local side of the color unification step:
// when the user last changed the zone color on this device and what that
// color is.
type ColorState interface {
	LastColorChange(ctx context.Context) (time.Time, error)
	CurrentColor(ctx context.Context) (string, error)
}
