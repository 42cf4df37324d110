// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watcher keeps the local shape collection in step with edits
// made on other devices. It consumes the remote metadata stream, filters
// out updates caused by this device's own writes, and turns the rest
// into debounced download reconciliations.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/adapter"
	"github.com/MKhiriev/zone-keeper/internal/auth"
	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/service"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/models"
)

type Watcher struct {
	remote   adapter.RemoteStore
	shapes   service.ShapeService
	session  auth.Session
	settings store.SettingsRepository
	cfg      config.Sync
	logger   *logger.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	pullTimer *time.Timer
	wg        sync.WaitGroup
}

func New(
	remote adapter.RemoteStore,
	shapes service.ShapeService,
	session auth.Session,
	settings store.SettingsRepository,
	cfg config.Sync,
	log *logger.Logger,
) *Watcher {
	return &Watcher{
		remote:   remote,
		shapes:   shapes,
		session:  session,
		settings: settings,
		cfg:      cfg,
		logger:   log,
	}
}

// Start launches the watch loop. It keeps resubscribing to the metadata
// stream until ctx is cancelled or Stop is called; while the store mode
// is local-only the loop idles.
func (w *Watcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		w.run(watchCtx)
	}()
}

// Stop cancels the watch loop, drops any pending debounced pull and
// blocks until the loop has exited. No-op when not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	if w.pullTimer != nil {
		w.pullTimer.Stop()
		w.pullTimer = nil
	}
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if w.shapes.Mode() != models.LocalAndRemote {
			if !sleepCtx(ctx, w.cfg.PullRetryDelay) {
				return
			}
			continue
		}

		uid := w.session.UserID()
		updates, err := w.remote.SubscribeMetadata(ctx, uid)
		if err != nil {
			w.logger.Warn().Err(err).Msg("metadata watch subscription failed, will retry")
			if !sleepCtx(ctx, w.cfg.PullRetryDelay) {
				return
			}
			continue
		}

		w.logger.Info().Str("uid", uid).Msg("metadata watch started")
		w.consume(ctx, updates)
		w.logger.Info().Str("uid", uid).Msg("metadata watch stream ended")
	}
}

// consume drains one subscription until the stream breaks.
func (w *Watcher) consume(ctx context.Context, updates <-chan models.SyncMetadata) {
	for {
		select {
		case <-ctx.Done():
			return
		case meta, ok := <-updates:
			if !ok {
				return
			}
			if w.shouldPull(ctx, meta) {
				w.schedulePull(ctx)
			}
		}
	}
}

// shouldPull filters metadata updates that carry no new information:
// bumps caused by this device's own writes, and bumps not newer than the
// last completed reconciliation.
func (w *Watcher) shouldPull(ctx context.Context, meta models.SyncMetadata) bool {
	ownWrite := w.remote.LastOwnWrite()
	if ownWrite.IsZero() {
		// fresh process: the adapter has not written yet, fall back to
		// the timestamp persisted before the restart
		if persisted, err := w.settings.GetTime(ctx, store.KeyLastOwnWriteAt); err == nil {
			ownWrite = persisted
		}
	}
	if !ownWrite.IsZero() && !meta.LastModified.After(ownWrite) {
		w.logger.Debug().
			Time("lastModified", meta.LastModified).
			Msg("metadata update attributed to own write, skipped")
		return false
	}

	lastSync, err := w.settings.GetTime(ctx, store.KeyLastSyncAt)
	if err != nil {
		w.logger.Warn().Err(err).Msg("cannot read last sync timestamp, pulling anyway")
		return true
	}
	if !lastSync.IsZero() && !meta.LastModified.After(lastSync) {
		return false
	}

	return true
}

// schedulePull arms the coalescing debounce timer. Another qualifying
// update arriving within the window restarts it, so a burst of remote
// writes results in one pull.
func (w *Watcher) schedulePull(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel == nil {
		return
	}
	if w.pullTimer != nil {
		w.pullTimer.Stop()
	}
	w.pullTimer = time.AfterFunc(w.cfg.RealtimeDebounce, func() {
		w.pull(ctx)
	})
}

// pull runs a download reconciliation, retrying transient failures with
// a linearly growing delay. After the attempt budget is spent the pull
// is abandoned until the next metadata update.
func (w *Watcher) pull(ctx context.Context) {
	attempts := w.cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		err := w.shapes.Reconcile(ctx, models.SyncRemoteToLocal)
		if err == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}

		w.logger.Warn().Err(err).
			Int("attempt", attempt).
			Msg("realtime pull failed")

		if attempt == attempts {
			return
		}
		if !sleepCtx(ctx, w.cfg.PullRetryDelay*time.Duration(attempt)) {
			return
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		d = time.Second
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
