package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/models"
)

type syncJob struct {
	shapes   ShapeService
	settings store.SettingsRepository
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a job that re-runs reconciliation on a ticker
// whenever a mirrored write has been swallowed since the last successful
// pass (persisted retry counter is non-zero). The job is idle until
// Start is called. A non-positive interval defaults to 5 minutes.
func NewSyncJob(shapes ShapeService, settings store.SettingsRepository, interval time.Duration, log *logger.Logger) SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncJob{
		shapes:   shapes,
		settings: settings,
		interval: interval,
		logger:   log,
	}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches the ticker goroutine. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the ticker goroutine and blocks
// until it has exited. No-op when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) tick(ctx context.Context) {
	if j.shapes.Mode() != models.LocalAndRemote {
		return
	}

	pending, err := j.settings.GetInt(ctx, store.KeySyncRetryCounter)
	if err != nil {
		j.logger.Warn().Err(err).Msg("sync job: cannot read retry counter")
		return
	}
	if pending == 0 {
		return
	}

	j.logger.Info().Int64("swallowed_writes", pending).Msg("sync job: reconciling diverged collections")
	if err = j.shapes.Reconcile(ctx, models.SyncLocalToRemote); err != nil {
		j.logger.Warn().Err(err).Msg("sync job: reconciliation failed")
	}
}
