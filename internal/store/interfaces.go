package store

import (
	"context"
	"time"

	"github.com/MKhiriev/zone-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ShapeRepository is the on-device, always-available shape collection.
// It is authoritative for what the UI renders. All operations are local
// I/O only: no network access, no domain validation beyond structural
// decoding. A Remove here is a hard delete from the local view;
// convergence with remote tombstones is the sync mediator's job.
type ShapeRepository interface {
	GetAll(ctx context.Context) ([]models.Shape, error)
	Get(ctx context.Context, id string) (models.Shape, error)
	SaveAll(ctx context.Context, shapes []models.Shape) error
	Add(ctx context.Context, shape models.Shape) error
	Update(ctx context.Context, shape models.Shape) error
	Remove(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// SettingsRepository is the persisted key-value settings store backing
// the engine's sync bookkeeping (timestamps, counters, preferences).
type SettingsRepository interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string) error
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
	GetInt(ctx context.Context, key string) (int64, error)
	SetInt(ctx context.Context, key string, value int64) error
	GetTime(ctx context.Context, key string) (time.Time, error)
	SetTime(ctx context.Context, key string, value time.Time) error
	Delete(ctx context.Context, key string) error
}

// BackupStore persists opportunistic JSON snapshots of the full shape
// array, written before risky operations and read back as a last-resort
// recovery path.
type BackupStore interface {
	Write(ctx context.Context, shapes []models.Shape) error
	Restore(ctx context.Context) ([]models.Shape, error)
}

// Persisted settings keys. Stored in the settings table and shared by
// the mediator, the watcher, and the remote store color unification.
const (
	KeyCloudBackupEnabled = "cloud_backup_enabled"
	KeyLastSyncAt         = "last_sync_at"
	KeyLastLocalModifyAt  = "last_local_modify_at"
	KeyLastColorChangeAt  = "last_color_change_at"
	KeyLastOwnWriteAt     = "last_own_write_at"
	KeyLastBackupAt       = "last_backup_at"
	KeySyncRetryCounter   = "sync_retry_counter"
	KeyDateOnlyDisplay    = "date_only_display"
	KeyDefaultColor       = "default_color"
)
