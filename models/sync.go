package models

import "time"

// SyncMetadata is the single per-user metadata document stored next to
// the remote shape collection. It is written after every successful
// remote mutation and watched by the realtime change watcher.
type SyncMetadata struct {
	// LastModified is the timestamp of the latest remote mutation.
	LastModified time.Time `json:"lastModified"`

	// LastColorChange is the timestamp of the latest color unification,
	// if any color change has ever been recorded.
	LastColorChange *time.Time `json:"lastColorChange,omitempty"`
}

// SyncOp identifies the direction of a reconciliation pass.
type SyncOp string

const (
	SyncLocalToRemote SyncOp = "localToRemote"
	SyncRemoteToLocal SyncOp = "remoteToLocal"
)

// SyncState is the phase of the observable sync status state machine.
type SyncState string

const (
	SyncIdle      SyncState = "idle"
	SyncSyncing   SyncState = "syncing"
	SyncCompleted SyncState = "completed"
	SyncFailed    SyncState = "failed"
)

// SyncStatus is a snapshot of the sync status state machine published to
// observers. Terminal states auto-revert to idle after a fixed display
// interval so observers can show transient status without polling.
type SyncStatus struct {
	State SyncState `json:"state"`
	Op    SyncOp    `json:"op,omitempty"`
	Err   string    `json:"error,omitempty"`
}

// StoreMode is the tagged variant selecting which backing stores the
// sync mediator writes to.
type StoreMode string

const (
	// LocalOnly: the user is signed out or cloud backup is disabled;
	// every operation touches only the local store.
	LocalOnly StoreMode = "localOnly"

	// LocalAndRemote: writes go to the local store first and are then
	// mirrored to the remote store best-effort.
	LocalAndRemote StoreMode = "localAndRemote"
)

// ResolveStoreMode is the pure function mapping the two external auth
// inputs onto a StoreMode.
func ResolveStoreMode(authenticated, backupEnabled bool) StoreMode {
	if authenticated && backupEnabled {
		return LocalAndRemote
	}
	return LocalOnly
}

// IntegrityReport is the result of a read-only data integrity check.
type IntegrityReport struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}
