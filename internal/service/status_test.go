package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/models"
)

func newTestTracker(t *testing.T, successDisplay, failureDisplay time.Duration) (*statusTracker, <-chan events.Event) {
	t.Helper()

	bus := events.NewBus(time.Millisecond, logger.Nop())
	t.Cleanup(bus.Close)

	ch, cancel := bus.Subscribe()
	t.Cleanup(cancel)

	tracker := newStatusTracker(bus, successDisplay, failureDisplay)
	t.Cleanup(tracker.stop)
	return tracker, ch
}

func waitForIdle(t *testing.T, tracker *statusTracker) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if tracker.snapshot().State == models.SyncIdle {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("status stuck in %q", tracker.snapshot().State)
}

func TestStatusTracker_SuccessPath(t *testing.T) {
	tracker, ch := newTestTracker(t, 30*time.Millisecond, time.Hour)

	assert.Equal(t, models.SyncIdle, tracker.snapshot().State)

	tracker.begin(models.SyncLocalToRemote)
	got := tracker.snapshot()
	assert.Equal(t, models.SyncSyncing, got.State)
	assert.Equal(t, models.SyncLocalToRemote, got.Op)

	tracker.finish(models.SyncLocalToRemote, nil)
	assert.Equal(t, models.SyncCompleted, tracker.snapshot().State)

	waitForIdle(t, tracker)

	select {
	case event := <-ch:
		assert.Equal(t, events.SyncStatusChanged, event.Kind)
	case <-time.After(time.Second):
		t.Fatal("no status event published")
	}
}

func TestStatusTracker_FailurePath(t *testing.T) {
	tracker, _ := newTestTracker(t, time.Hour, 30*time.Millisecond)

	tracker.begin(models.SyncRemoteToLocal)
	tracker.finish(models.SyncRemoteToLocal, assert.AnError)

	got := tracker.snapshot()
	require.Equal(t, models.SyncFailed, got.State)
	assert.Equal(t, models.SyncRemoteToLocal, got.Op)
	assert.NotEmpty(t, got.Err)

	waitForIdle(t, tracker)
}

func TestStatusTracker_NewPassCancelsPendingRevert(t *testing.T) {
	tracker, _ := newTestTracker(t, 20*time.Millisecond, time.Hour)

	tracker.begin(models.SyncLocalToRemote)
	tracker.finish(models.SyncLocalToRemote, nil)

	// a new pass starts before the completed state reverts
	tracker.begin(models.SyncRemoteToLocal)
	time.Sleep(60 * time.Millisecond)

	got := tracker.snapshot()
	assert.Equal(t, models.SyncSyncing, got.State, "revert timer of the previous pass must not fire into the new one")
	assert.Equal(t, models.SyncRemoteToLocal, got.Op)
}
