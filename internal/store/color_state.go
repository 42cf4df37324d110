package store

import (
	"context"
	"time"
)

// SettingsColorState exposes the locally persisted color preference in
// the form the remote store's color unification step consumes.
type SettingsColorState struct {
	settings SettingsRepository
}

func NewSettingsColorState(settings SettingsRepository) *SettingsColorState {
	return &SettingsColorState{settings: settings}
}

// LastColorChange returns when the user last changed the zone color on
// this device; zero when never.
func (c *SettingsColorState) LastColorChange(ctx context.Context) (time.Time, error) {
	return c.settings.GetTime(ctx, KeyLastColorChangeAt)
}

// CurrentColor returns the persisted default color; empty when never
// set.
func (c *SettingsColorState) CurrentColor(ctx context.Context) (string, error) {
	return c.settings.GetString(ctx, KeyDefaultColor)
}
