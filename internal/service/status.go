package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/models"
)

// statusTracker is the observable sync status state machine:
// idle → syncing → completed | failed → idle. Terminal states revert to
// idle on a timer (shorter for success than for failure) so observers
// can show transient status without polling. Every transition is
// announced on the event bus.
type statusTracker struct {
	bus            *events.Bus
	successDisplay time.Duration
	failureDisplay time.Duration

	mu      sync.Mutex
	current models.SyncStatus
	revert  *time.Timer
}

func newStatusTracker(bus *events.Bus, successDisplay, failureDisplay time.Duration) *statusTracker {
	return &statusTracker{
		bus:            bus,
		successDisplay: successDisplay,
		failureDisplay: failureDisplay,
		current:        models.SyncStatus{State: models.SyncIdle},
	}
}

func (t *statusTracker) begin(op models.SyncOp) {
	t.transition(models.SyncStatus{State: models.SyncSyncing, Op: op}, 0)
}

func (t *statusTracker) finish(op models.SyncOp, err error) {
	if err != nil {
		t.transition(models.SyncStatus{State: models.SyncFailed, Op: op, Err: err.Error()}, t.failureDisplay)
		return
	}
	t.transition(models.SyncStatus{State: models.SyncCompleted, Op: op}, t.successDisplay)
}

func (t *statusTracker) snapshot() models.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *statusTracker) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.revert != nil {
		t.revert.Stop()
		t.revert = nil
	}
}

// transition replaces the current status and arms the auto-revert timer
// for terminal states. A newer transition cancels any pending revert.
func (t *statusTracker) transition(next models.SyncStatus, revertAfter time.Duration) {
	t.mu.Lock()
	if t.revert != nil {
		t.revert.Stop()
		t.revert = nil
	}
	t.current = next
	if revertAfter > 0 {
		t.revert = time.AfterFunc(revertAfter, t.revertToIdle)
	}
	t.mu.Unlock()

	t.bus.Publish(events.SyncStatusChanged)
}

func (t *statusTracker) revertToIdle() {
	t.mu.Lock()
	if t.current.State != models.SyncCompleted && t.current.State != models.SyncFailed {
		t.mu.Unlock()
		return
	}
	t.current = models.SyncStatus{State: models.SyncIdle}
	t.revert = nil
	t.mu.Unlock()

	t.bus.Publish(events.SyncStatusChanged)
}
