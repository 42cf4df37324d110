package watcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/mock"
	"github.com/MKhiriev/zone-keeper/internal/service"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/models"
)

// fakeShapeService counts reconciliations; failures can be injected per
// call.
type fakeShapeService struct {
	service.ShapeService

	mode       models.StoreMode
	reconciles atomic.Int64
	failFirst  int64
}

func (f *fakeShapeService) Mode() models.StoreMode { return f.mode }

func (f *fakeShapeService) Reconcile(context.Context, models.SyncOp) error {
	n := f.reconciles.Add(1)
	if n <= f.failFirst {
		return errors.New("pull failed")
	}
	return nil
}

func testCfg() config.Sync {
	return config.Sync{
		RealtimeDebounce: 20 * time.Millisecond,
		RetryAttempts:    3,
		PullRetryDelay:   5 * time.Millisecond,
	}
}

type watcherFixture struct {
	watcher *Watcher
	shapes  *fakeShapeService
	updates chan models.SyncMetadata
}

// newFixture wires a watcher whose first subscription is fed from the
// returned channel; reconnects get a stream that never delivers.
func newFixture(t *testing.T, ctrl *gomock.Controller, ownWrite time.Time, lastSync time.Time) *watcherFixture {
	t.Helper()

	updates := make(chan models.SyncMetadata, 8)

	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().LastOwnWrite().Return(ownWrite).AnyTimes()

	first := true
	remote.EXPECT().
		SubscribeMetadata(gomock.Any(), "user-42").
		DoAndReturn(func(context.Context, string) (<-chan models.SyncMetadata, error) {
			if first {
				first = false
				return updates, nil
			}
			return make(chan models.SyncMetadata), nil
		}).
		AnyTimes()

	session := mock.NewMockSession(ctrl)
	session.EXPECT().UserID().Return("user-42").AnyTimes()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().
		GetTime(gomock.Any(), store.KeyLastSyncAt).
		Return(lastSync, nil).
		AnyTimes()
	settings.EXPECT().
		GetTime(gomock.Any(), store.KeyLastOwnWriteAt).
		Return(time.Time{}, nil).
		AnyTimes()

	shapes := &fakeShapeService{mode: models.LocalAndRemote}
	w := New(remote, shapes, session, settings, testCfg(), logger.Nop())

	return &watcherFixture{watcher: w, shapes: shapes, updates: updates}
}

func waitForReconciles(t *testing.T, shapes *fakeShapeService, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if shapes.reconciles.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("reconcile count %d, want at least %d", shapes.reconciles.Load(), want)
}

func TestWatcher_BurstOfUpdatesCoalescesIntoOnePull(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, time.Time{}, time.Time{})

	f.watcher.Start(context.Background())
	defer f.watcher.Stop()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		f.updates <- models.SyncMetadata{LastModified: now.Add(time.Duration(i) * time.Millisecond)}
	}

	waitForReconciles(t, f.shapes, 1)
	time.Sleep(100 * time.Millisecond)

	if got := f.shapes.reconciles.Load(); got != 1 {
		t.Fatalf("burst produced %d pulls, want 1", got)
	}
}

func TestWatcher_SkipsOwnWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	ownWrite := time.Now().UTC()
	f := newFixture(t, ctrl, ownWrite, time.Time{})

	f.watcher.Start(context.Background())
	defer f.watcher.Stop()

	// the echo of this device's own metadata bump
	f.updates <- models.SyncMetadata{LastModified: ownWrite}
	time.Sleep(100 * time.Millisecond)

	if got := f.shapes.reconciles.Load(); got != 0 {
		t.Fatalf("own write caused %d pulls, want 0", got)
	}

	// another device writes afterwards
	f.updates <- models.SyncMetadata{LastModified: ownWrite.Add(time.Second)}
	waitForReconciles(t, f.shapes, 1)
}

func TestWatcher_SkipsOwnWritesPersistedBeforeRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	persisted := time.Now().UTC()

	updates := make(chan models.SyncMetadata, 8)

	// simulates a freshly started process: the adapter has no in-memory
	// own-write record, only the settings row survives
	remote := mock.NewMockRemoteStore(ctrl)
	remote.EXPECT().LastOwnWrite().Return(time.Time{}).AnyTimes()
	remote.EXPECT().
		SubscribeMetadata(gomock.Any(), "user-42").
		Return((<-chan models.SyncMetadata)(updates), nil)

	session := mock.NewMockSession(ctrl)
	session.EXPECT().UserID().Return("user-42").AnyTimes()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().
		GetTime(gomock.Any(), store.KeyLastOwnWriteAt).
		Return(persisted, nil).
		AnyTimes()
	settings.EXPECT().
		GetTime(gomock.Any(), store.KeyLastSyncAt).
		Return(time.Time{}, nil).
		AnyTimes()

	shapes := &fakeShapeService{mode: models.LocalAndRemote}
	w := New(remote, shapes, session, settings, testCfg(), logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	updates <- models.SyncMetadata{LastModified: persisted}
	time.Sleep(100 * time.Millisecond)

	if got := shapes.reconciles.Load(); got != 0 {
		t.Fatalf("pre-restart own write caused %d pulls, want 0", got)
	}

	updates <- models.SyncMetadata{LastModified: persisted.Add(time.Second)}
	waitForReconciles(t, shapes, 1)
}

func TestWatcher_SkipsAlreadyReconciledUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	lastSync := time.Now().UTC()
	f := newFixture(t, ctrl, time.Time{}, lastSync)

	f.watcher.Start(context.Background())
	defer f.watcher.Stop()

	f.updates <- models.SyncMetadata{LastModified: lastSync.Add(-time.Minute)}
	time.Sleep(100 * time.Millisecond)

	if got := f.shapes.reconciles.Load(); got != 0 {
		t.Fatalf("stale update caused %d pulls, want 0", got)
	}
}

func TestWatcher_RetriesFailedPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, time.Time{}, time.Time{})
	f.shapes.failFirst = 2

	f.watcher.Start(context.Background())
	defer f.watcher.Stop()

	f.updates <- models.SyncMetadata{LastModified: time.Now().UTC()}

	// two failures then success, all within one trigger
	waitForReconciles(t, f.shapes, 3)
}

func TestWatcher_GivesUpAfterAttemptBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t, ctrl, time.Time{}, time.Time{})
	f.shapes.failFirst = 100

	f.watcher.Start(context.Background())
	defer f.watcher.Stop()

	f.updates <- models.SyncMetadata{LastModified: time.Now().UTC()}

	waitForReconciles(t, f.shapes, 3)
	time.Sleep(100 * time.Millisecond)

	if got := f.shapes.reconciles.Load(); got != 3 {
		t.Fatalf("pull retried %d times, want exactly the attempt budget of 3", got)
	}
}

func TestWatcher_IdlesInLocalOnlyMode(t *testing.T) {
	ctrl := gomock.NewController(t)

	remote := mock.NewMockRemoteStore(ctrl) // SubscribeMetadata must never be called
	session := mock.NewMockSession(ctrl)
	settings := mock.NewMockSettingsRepository(ctrl)

	shapes := &fakeShapeService{mode: models.LocalOnly}
	w := New(remote, shapes, session, settings, testCfg(), logger.Nop())

	w.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	w.Stop()
}
