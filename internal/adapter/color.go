package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/zone-keeper/models"
)

// unifyColors enforces the single-active-color invariant across devices
// without a separate coordination protocol. It compares the most recent
// local color change against the remote lastColorChange timestamp and
// rewrites every active shape's color in place to whichever side changed
// more recently. Ties favor the remote side.
func (h *httpRemoteStore) unifyColors(ctx context.Context, uid string, shapes []models.Shape) error {
	if len(shapes) == 0 {
		return nil
	}

	meta, err := h.LoadMetadata(ctx, uid)
	if err != nil {
		return fmt.Errorf("load metadata for color unification: %w", err)
	}

	localChangedAt, err := h.colors.LastColorChange(ctx)
	if err != nil {
		return fmt.Errorf("read local color change timestamp: %w", err)
	}

	var remoteChangedAt time.Time
	if meta.LastColorChange != nil {
		remoteChangedAt = *meta.LastColorChange
	}

	var unified string
	if localChangedAt.After(remoteChangedAt) {
		unified, err = h.colors.CurrentColor(ctx)
		if err != nil {
			return fmt.Errorf("read local color: %w", err)
		}
	} else {
		unified = newestShapeColor(shapes)
	}
	if unified == "" {
		return nil
	}

	for i := range shapes {
		shapes[i].Color = unified
	}

	return nil
}

// newestShapeColor returns the color of the most recently updated shape,
// which represents the remote side's current unified color.
func newestShapeColor(shapes []models.Shape) string {
	var newest *models.Shape
	for i := range shapes {
		if newest == nil || shapes[i].UpdatedAt.After(newest.UpdatedAt) {
			newest = &shapes[i]
		}
	}
	if newest == nil {
		return ""
	}
	return newest.Color
}
