// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// zone-keeper engine. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds settings of the per-user remote shape store.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration of the on-device persistence layer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds timing knobs of the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// LogToFile switches engine logging from stdout to a file placed
	// next to the executable, for on-device deployments where stdout is
	// not collected.
	// Env: LOG_TO_FILE
	LogToFile bool `env:"LOG_TO_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds network settings of the remote shape store.
type Remote struct {
	// BaseURL is the HTTP endpoint of the remote document store
	// (e.g. "https://sync.example.com"). Paths of the form
	// users/{uid}/shapes/{shapeId} are resolved against it.
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// WatchURL is the websocket endpoint streaming SyncMetadata updates.
	// When empty it is derived from BaseURL by swapping the scheme.
	// Env: REMOTE_WATCH_URL
	WatchURL string `env:"WATCH_URL"`

	// RequestTimeout is the per-request timeout of the HTTP client
	// (e.g. "30s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds on-device persistence settings.
type Storage struct {
	// DSN is the SQLite database file path holding the local shape set.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// BackupDir is the directory receiving timestamped JSON backup
	// snapshots written before risky operations.
	// Env: STORAGE_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`
}

// Sync holds the timing knobs of the synchronization engine. Zero values
// are replaced with defaults during validation.
type Sync struct {
	// StoreSwitchDebounce delays re-evaluation of the backing store mode
	// after an auth/backup input change. Default 500ms.
	// Env: SYNC_STORE_SWITCH_DEBOUNCE
	StoreSwitchDebounce time.Duration `env:"STORE_SWITCH_DEBOUNCE"`

	// RealtimeDebounce coalesces bursts of remote metadata updates into
	// a single reconciliation pull. Default 2s.
	// Env: SYNC_REALTIME_DEBOUNCE
	RealtimeDebounce time.Duration `env:"REALTIME_DEBOUNCE"`

	// EventDebounce caps "shapes changed" emissions to one per interval.
	// Default 100ms.
	// Env: SYNC_EVENT_DEBOUNCE
	EventDebounce time.Duration `env:"EVENT_DEBOUNCE"`

	// RetryAttempts is the attempt budget of every remote write. Default 3.
	// Env: SYNC_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is multiplied by the attempt number to produce the
	// linearly increasing delay between remote write attempts. Default 1s.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// PullRetryDelay is multiplied by the attempt number between realtime
	// pull retries. Default 5s.
	// Env: SYNC_PULL_RETRY_DELAY
	PullRetryDelay time.Duration `env:"PULL_RETRY_DELAY"`

	// StatusSuccessDisplay and StatusFailureDisplay are the intervals a
	// terminal sync status remains observable before auto-reverting to
	// idle. Defaults 2s / 5s.
	StatusSuccessDisplay time.Duration `env:"STATUS_SUCCESS_DISPLAY"`
	StatusFailureDisplay time.Duration `env:"STATUS_FAILURE_DISPLAY"`

	// JobInterval is the period of the background full-reconciliation
	// safety-net job. Default 5m.
	// Env: SYNC_JOB_INTERVAL
	JobInterval time.Duration `env:"JOB_INTERVAL"`
}

// GetConfig loads, merges, and validates the engine configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
