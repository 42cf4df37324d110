// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/zone-keeper/internal/adapter"
	"github.com/MKhiriev/zone-keeper/internal/auth"
	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/internal/validators"
	"github.com/MKhiriev/zone-keeper/models"
)

type shapeService struct {
	shapes    store.ShapeRepository
	settings  store.SettingsRepository
	backup    store.BackupStore
	remote    adapter.RemoteStore
	session   auth.Session
	validator validators.ShapeValidator
	bus       *events.Bus
	status    *statusTracker
	logger    *logger.Logger
	cfg       config.Sync

	// gate serializes reconciliation passes and ordinary operations:
	// a CRUD call arriving while a reconciliation is in flight parks
	// until the pass completes instead of interleaving with it
	gate *gate

	mu        sync.Mutex
	mode      models.StoreMode
	modeTimer *time.Timer
	closed    bool
}

// NewShapeService wires the sync mediator. It resolves the initial store
// mode from the session and registers a listener that re-resolves it,
// debounced, after every auth or backup-flag transition. A mode switch
// to LocalAndRemote triggers an upload-first reconciliation; a switch
// back to LocalOnly triggers a final download while the session is still
// usable.
func NewShapeService(
	storages *store.Storages,
	remote adapter.RemoteStore,
	session auth.Session,
	validator validators.ShapeValidator,
	bus *events.Bus,
	cfg config.Sync,
	log *logger.Logger,
) ShapeService {
	s := &shapeService{
		shapes:    storages.Shapes,
		settings:  storages.Settings,
		backup:    storages.Backup,
		remote:    remote,
		session:   session,
		validator: validator,
		bus:       bus,
		status:    newStatusTracker(bus, cfg.StatusSuccessDisplay, cfg.StatusFailureDisplay),
		logger:    log,
		cfg:       cfg,
		gate:      newGate(),
		mode:      session.StoreMode(),
	}

	if s.mode == models.LocalAndRemote {
		remote.SetToken(session.Token())
	}
	session.OnChange(s.scheduleModeRefresh)

	return s
}

// Load implements [ShapeService]. Remote-only shapes are merged into
// the local store on the way out, so a collection written by another
// device becomes visible without waiting for a watcher pull.
func (s *shapeService) Load(ctx context.Context) ([]models.Shape, error) {
	if err := s.gate.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.gate.release()

	all, err := s.shapes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shapes: %w", err)
	}
	all = s.adoptRemoteShapes(ctx, all)

	active := make([]models.Shape, 0, len(all))
	for i := range all {
		if !all[i].IsDeleted() {
			active = append(active, all[i])
		}
	}
	return active, nil
}

// adoptRemoteShapes appends remote shapes whose id is unknown locally
// and persists the widened collection. Best effort: on any failure the
// local data is served as-is.
func (s *shapeService) adoptRemoteShapes(ctx context.Context, local []models.Shape) []models.Shape {
	if s.Mode() != models.LocalAndRemote {
		return local
	}
	uid := s.session.UserID()
	if uid == "" {
		return local
	}

	remote, err := s.remote.LoadShapes(ctx, uid)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remote read during load failed, serving local data")
		return local
	}

	known := make(map[string]bool, len(local))
	for i := range local {
		known[local[i].ID] = true
	}

	adopted := false
	for i := range remote {
		if !known[remote[i].ID] {
			local = append(local, remote[i])
			adopted = true
		}
	}
	if !adopted {
		return local
	}

	if err = s.shapes.SaveAll(ctx, local); err != nil {
		s.logger.Warn().Err(err).Msg("persisting adopted remote shapes failed")
		return local
	}
	s.bus.Publish(events.ShapesChanged)
	return local
}

// SaveAll implements [ShapeService].
func (s *shapeService) SaveAll(ctx context.Context, shapes []models.Shape) error {
	if err := s.gate.acquire(ctx); err != nil {
		return err
	}
	defer s.gate.release()

	if err := s.validator.ValidateBatch(ctx, shapes); err != nil {
		return err
	}

	s.writeBackupSnapshot(ctx)

	if err := s.shapes.SaveAll(ctx, shapes); err != nil {
		return fmt.Errorf("save shapes locally: %w", err)
	}
	s.noteLocalModification(ctx)

	s.mirror(ctx, "save all shapes", func(uid string) error {
		return s.remote.SaveShapes(ctx, uid, shapes)
	})
	return nil
}

// Add implements [ShapeService].
func (s *shapeService) Add(ctx context.Context, shape models.Shape) (models.Shape, error) {
	if err := s.gate.acquire(ctx); err != nil {
		return models.Shape{}, err
	}
	defer s.gate.release()

	now := time.Now().UTC()
	if strings.TrimSpace(shape.ID) == "" {
		shape.ID = uuid.NewString()
	}
	if shape.CreatedAt.IsZero() {
		shape.CreatedAt = now
	}
	shape.UpdatedAt = now

	if err := s.validator.ValidateShape(ctx, shape); err != nil {
		return models.Shape{}, err
	}

	if err := s.shapes.Add(ctx, shape); err != nil {
		return models.Shape{}, fmt.Errorf("add shape locally: %w", err)
	}
	s.noteLocalModification(ctx)

	s.mirror(ctx, "add shape", func(uid string) error {
		return s.remote.AddShape(ctx, uid, shape)
	})
	return shape, nil
}

// Update implements [ShapeService].
func (s *shapeService) Update(ctx context.Context, shape models.Shape) (models.Shape, error) {
	if err := s.gate.acquire(ctx); err != nil {
		return models.Shape{}, err
	}
	defer s.gate.release()

	shape.UpdatedAt = time.Now().UTC()

	if err := s.validator.ValidateShape(ctx, shape); err != nil {
		return models.Shape{}, err
	}

	if err := s.shapes.Update(ctx, shape); err != nil {
		return models.Shape{}, fmt.Errorf("update shape locally: %w", err)
	}
	s.noteLocalModification(ctx)

	s.mirror(ctx, "update shape", func(uid string) error {
		return s.remote.UpdateShape(ctx, uid, shape)
	})
	return shape, nil
}

// Remove implements [ShapeService].
func (s *shapeService) Remove(ctx context.Context, id string) error {
	if err := s.gate.acquire(ctx); err != nil {
		return err
	}
	defer s.gate.release()

	if err := s.shapes.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove shape locally: %w", err)
	}
	s.noteLocalModification(ctx)

	s.mirror(ctx, "remove shape", func(uid string) error {
		return s.remote.RemoveShape(ctx, uid, id)
	})
	return nil
}

// DeleteExpired implements [ShapeService].
func (s *shapeService) DeleteExpired(ctx context.Context) (int64, error) {
	if err := s.gate.acquire(ctx); err != nil {
		return 0, err
	}
	defer s.gate.release()

	now := time.Now().UTC()

	removed, err := s.shapes.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired shapes locally: %w", err)
	}
	if removed > 0 {
		s.noteLocalModification(ctx)
	}

	s.mirror(ctx, "delete expired shapes", func(uid string) error {
		_, mirrorErr := s.remote.DeleteExpiredShapes(ctx, uid)
		return mirrorErr
	})
	return removed, nil
}

// SetColor implements [ShapeService].
func (s *shapeService) SetColor(ctx context.Context, color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return fmt.Errorf("%w: empty color", validators.ErrInvalidShape)
	}

	if err := s.gate.acquire(ctx); err != nil {
		return err
	}
	defer s.gate.release()

	all, err := s.shapes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load shapes for recolor: %w", err)
	}

	now := time.Now().UTC()
	for i := range all {
		if all[i].IsDeleted() {
			continue
		}
		all[i].Color = color
		all[i].UpdatedAt = now
	}

	if err = s.shapes.SaveAll(ctx, all); err != nil {
		return fmt.Errorf("recolor shapes locally: %w", err)
	}

	if err = s.settings.SetString(ctx, store.KeyDefaultColor, color); err != nil {
		return fmt.Errorf("persist default color: %w", err)
	}
	if err = s.settings.SetTime(ctx, store.KeyLastColorChangeAt, now); err != nil {
		return fmt.Errorf("persist color change timestamp: %w", err)
	}
	s.noteLocalModification(ctx)

	s.mirror(ctx, "recolor shapes", func(uid string) error {
		if mirrorErr := s.remote.SaveShapes(ctx, uid, all); mirrorErr != nil {
			return mirrorErr
		}
		// publish the recolor timestamp so other devices' color
		// unification sees this change as the newer side
		return s.remote.RecordColorChange(ctx, uid, now)
	})
	return nil
}

// VerifyDataIntegrity implements [ShapeService].
func (s *shapeService) VerifyDataIntegrity(ctx context.Context) models.IntegrityReport {
	all, err := s.shapes.GetAll(ctx)
	if err != nil {
		return models.IntegrityReport{Reason: fmt.Sprintf("load shapes: %v", err)}
	}

	seen := make(map[string]bool, len(all))
	for i := range all {
		shape := &all[i]
		if strings.TrimSpace(shape.Title) == "" {
			return models.IntegrityReport{Reason: fmt.Sprintf("shape %s has an empty title", shape.ID)}
		}
		if seen[shape.ID] {
			return models.IntegrityReport{Reason: fmt.Sprintf("duplicate shape id %s", shape.ID)}
		}
		seen[shape.ID] = true

		if err = s.validator.ValidateShape(ctx, *shape); err != nil {
			return models.IntegrityReport{Reason: err.Error()}
		}
	}

	return models.IntegrityReport{OK: true}
}

// EmergencyRestore implements [ShapeService]. The backup snapshot is
// tried first; the remote store is the fallback. Restored data replaces
// the local collection.
func (s *shapeService) EmergencyRestore(ctx context.Context) ([]models.Shape, error) {
	if err := s.gate.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.gate.release()

	shapes, err := s.backup.Restore(ctx)
	if err == nil {
		// a snapshot that no longer validates is as useless as a missing one
		if verr := s.validator.ValidateBatch(ctx, shapes); verr != nil {
			err = fmt.Errorf("%w: %w", ErrVerificationFailed, verr)
		}
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("backup restore failed, trying remote store")

		shapes, err = s.restoreFromRemote(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNothingToRestore, err)
		}
	}

	if err = s.shapes.SaveAll(ctx, shapes); err != nil {
		return nil, fmt.Errorf("save restored shapes: %w", err)
	}

	s.bus.Publish(events.ShapesChanged)
	s.logger.Info().Int("shapes", len(shapes)).Msg("emergency restore completed")
	return shapes, nil
}

func (s *shapeService) restoreFromRemote(ctx context.Context) ([]models.Shape, error) {
	if s.Mode() != models.LocalAndRemote {
		return nil, ErrNoUserSession
	}
	return s.remote.LoadShapes(ctx, s.session.UserID())
}

// Status implements [ShapeService].
func (s *shapeService) Status() models.SyncStatus {
	return s.status.snapshot()
}

// Mode implements [ShapeService].
func (s *shapeService) Mode() models.StoreMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Close implements [ShapeService].
func (s *shapeService) Close() {
	s.mu.Lock()
	s.closed = true
	if s.modeTimer != nil {
		s.modeTimer.Stop()
		s.modeTimer = nil
	}
	s.mu.Unlock()

	s.status.stop()
}

// scheduleModeRefresh arms the store-switch debounce timer. Input
// changes arriving within the window reset it, so a flapping input
// settles into a single mode switch.
func (s *shapeService) scheduleModeRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.modeTimer != nil {
		s.modeTimer.Stop()
	}
	s.modeTimer = time.AfterFunc(s.cfg.StoreSwitchDebounce, s.refreshMode)
}

func (s *shapeService) refreshMode() {
	next := s.session.StoreMode()

	s.mu.Lock()
	if s.closed || next == s.mode {
		s.mu.Unlock()
		return
	}
	previous := s.mode
	s.mode = next
	s.mu.Unlock()

	s.logger.Info().
		Str("from", string(previous)).
		Str("to", string(next)).
		Msg("store mode switched")

	ctx := context.Background()
	switch next {
	case models.LocalAndRemote:
		s.remote.SetToken(s.session.Token())
		if err := s.Reconcile(ctx, models.SyncLocalToRemote); err != nil {
			s.logger.Error().Err(err).Msg("reconciliation after mode switch failed")
		}
	case models.LocalOnly:
		// best effort: pull the remote state down while the token may
		// still be valid, then stop mirroring
		if s.session.Authenticated() {
			if err := s.Reconcile(ctx, models.SyncRemoteToLocal); err != nil {
				s.logger.Warn().Err(err).Msg("final download before going local-only failed")
			}
		}
		s.remote.SetToken("")
	}
}

// mirror runs the remote leg of a mutation. Failures are logged and
// swallowed; the persisted retry counter marks the collections as
// diverged so the background job knows to reconcile.
func (s *shapeService) mirror(ctx context.Context, opName string, op func(uid string) error) {
	if s.Mode() != models.LocalAndRemote {
		return
	}

	uid := s.session.UserID()
	if uid == "" {
		return
	}

	if err := op(uid); err != nil {
		s.logger.Warn().Err(err).
			Str("op", opName).
			Msg("remote mirror failed, local write kept")
		s.bumpRetryCounter(ctx)
		return
	}

	// persist the own-write timestamp so echo detection survives a
	// process restart
	if ownWrite := s.remote.LastOwnWrite(); !ownWrite.IsZero() {
		if err := s.settings.SetTime(ctx, store.KeyLastOwnWriteAt, ownWrite); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record own-write timestamp")
		}
	}

	s.bus.Publish(events.ShapesChanged)
}

func (s *shapeService) noteLocalModification(ctx context.Context) {
	if err := s.settings.SetTime(ctx, store.KeyLastLocalModifyAt, time.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record local modification timestamp")
	}
	s.bus.Publish(events.ShapesChanged)
}

func (s *shapeService) bumpRetryCounter(ctx context.Context) {
	counter, err := s.settings.GetInt(ctx, store.KeySyncRetryCounter)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read sync retry counter")
		return
	}
	if err = s.settings.SetInt(ctx, store.KeySyncRetryCounter, counter+1); err != nil {
		s.logger.Warn().Err(err).Msg("failed to bump sync retry counter")
	}
}

func (s *shapeService) writeBackupSnapshot(ctx context.Context) {
	current, err := s.shapes.GetAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("backup snapshot skipped: cannot read current shapes")
		return
	}
	if len(current) == 0 {
		return
	}

	if err = s.backup.Write(ctx, current); err != nil {
		s.logger.Warn().Err(err).Msg("backup snapshot failed")
		return
	}
	if err = s.settings.SetTime(ctx, store.KeyLastBackupAt, time.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record backup timestamp")
	}
}
