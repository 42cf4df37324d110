package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/events"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/models"
)

// Reconcile implements [ShapeService]. The pass runs under the
// serialization gate: a second trigger arriving mid-pass parks until the
// first completes, and a cancelled waiter leaves the queue without
// running.
func (s *shapeService) Reconcile(ctx context.Context, op models.SyncOp) error {
	if err := s.gate.acquire(ctx); err != nil {
		return err
	}
	defer s.gate.release()

	s.status.begin(op)

	err := s.reconcile(ctx, op)
	s.status.finish(op, err)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if setErr := s.settings.SetTime(ctx, store.KeyLastSyncAt, now); setErr != nil {
		s.logger.Warn().Err(setErr).Msg("failed to record sync timestamp")
	}
	if setErr := s.settings.SetInt(ctx, store.KeySyncRetryCounter, 0); setErr != nil {
		s.logger.Warn().Err(setErr).Msg("failed to reset sync retry counter")
	}

	s.bus.Publish(events.ShapesChanged)
	return nil
}

// reconcile merges the two collections and writes the result back.
// Direction decides whether the merged set is pushed to the remote store
// (localToRemote, the login transition) or only applied locally
// (remoteToLocal, the final download before going local-only).
func (s *shapeService) reconcile(ctx context.Context, op models.SyncOp) error {
	uid := s.session.UserID()
	if uid == "" {
		return ErrNoUserSession
	}

	local, err := s.shapes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load local shapes: %w", err)
	}

	remote, err := s.remote.LoadAllShapes(ctx, uid)
	if err != nil {
		return fmt.Errorf("load remote shapes: %w", err)
	}

	merged := mergeShapes(local, remote)

	active := make([]models.Shape, 0, len(merged))
	for i := range merged {
		if !merged[i].IsDeleted() {
			active = append(active, merged[i])
		}
	}
	unifyActiveColor(active)

	s.writeBackupSnapshot(ctx)

	if err = s.shapes.SaveAll(ctx, active); err != nil {
		return fmt.Errorf("apply merged shapes locally: %w", err)
	}

	if op == models.SyncLocalToRemote {
		// tombstones ride along so other devices converge on deletions
		if err = s.remote.SaveShapes(ctx, uid, merged); err != nil {
			s.rollbackFromBackup(ctx)
			return fmt.Errorf("upload merged shapes: %w", err)
		}
	}

	s.logger.Info().
		Str("op", string(op)).
		Int("local", len(local)).
		Int("remote", len(remote)).
		Int("merged", len(merged)).
		Msg("reconciliation completed")
	return nil
}

// unifyActiveColor rewrites every active shape to the color of the most
// recently updated one, keeping the single-active-color invariant after
// a merge mixes shapes recolored on different devices.
func unifyActiveColor(shapes []models.Shape) {
	var newest *models.Shape
	for i := range shapes {
		if newest == nil || shapes[i].UpdatedAt.After(newest.UpdatedAt) {
			newest = &shapes[i]
		}
	}
	if newest == nil || newest.Color == "" {
		return
	}
	for i := range shapes {
		shapes[i].Color = newest.Color
	}
}

// rollbackFromBackup puts the pre-merge snapshot back after a partially
// applied reconciliation. Best effort: a failed rollback only logs.
func (s *shapeService) rollbackFromBackup(ctx context.Context) {
	shapes, err := s.backup.Restore(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rollback skipped: no usable backup snapshot")
		return
	}
	if err = s.shapes.SaveAll(ctx, shapes); err != nil {
		s.logger.Error().Err(err).Msg("rollback to backup snapshot failed")
		return
	}
	s.logger.Info().Int("shapes", len(shapes)).Msg("local shapes rolled back to backup snapshot")
}

// mergeShapes joins the two collections by shape id. One-sided shapes
// are kept as-is; for both-sided ids the shape with the newer UpdatedAt
// wins and equal timestamps favor the remote copy. The result may
// contain tombstones; callers filter per destination.
func mergeShapes(local, remote []models.Shape) []models.Shape {
	localByID := make(map[string]models.Shape, len(local))
	for i := range local {
		localByID[local[i].ID] = local[i]
	}

	merged := make([]models.Shape, 0, len(local)+len(remote))
	for i := range remote {
		remoteShape := remote[i]
		localShape, both := localByID[remoteShape.ID]
		if !both {
			merged = append(merged, remoteShape)
			continue
		}
		delete(localByID, remoteShape.ID)

		if localShape.NewerThan(&remoteShape) {
			merged = append(merged, localShape)
		} else {
			merged = append(merged, remoteShape)
		}
	}

	// shapes created offline on this device only
	for i := range local {
		if _, leftOver := localByID[local[i].ID]; leftOver {
			merged = append(merged, local[i])
		}
	}

	return merged
}
