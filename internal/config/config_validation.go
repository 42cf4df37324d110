// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the built-in lowest-priority configuration layer.
// The timing values mirror the engine's documented debounce/retry policy.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Remote: Remote{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DSN:       "zone-keeper.db",
			BackupDir: "backups",
		},
		Sync: Sync{
			StoreSwitchDebounce:  500 * time.Millisecond,
			RealtimeDebounce:     2 * time.Second,
			EventDebounce:        100 * time.Millisecond,
			RetryAttempts:        3,
			RetryBaseDelay:       time.Second,
			PullRetryDelay:       5 * time.Second,
			StatusSuccessDisplay: 2 * time.Second,
			StatusFailureDisplay: 5 * time.Second,
			JobInterval:          5 * time.Minute,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// engine invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Sync.RetryAttempts < 1 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.StoreSwitchDebounce <= 0 || cfg.Sync.RealtimeDebounce <= 0 || cfg.Sync.EventDebounce <= 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}
