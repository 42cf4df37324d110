package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/logger"
)

// Storages groups all on-device storage repositories into a single value
// that can be passed around the service layer.
type Storages struct {
	// Shapes is the SQLite-backed repository holding the local shape set.
	Shapes ShapeRepository

	// Settings is the persisted key-value store for sync bookkeeping.
	Settings SettingsRepository

	// Backup writes and restores JSON snapshots of the full shape array.
	Backup BackupStore
}

// NewStorages initialises the on-device storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh
//     repositories and the file-based backup store.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Shapes:   NewShapeRepository(db, logger),
		Settings: NewSettingsRepository(db, logger),
		Backup:   NewFileBackupStore(cfg.BackupDir, logger),
	}, nil
}
