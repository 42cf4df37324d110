// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/store"
	"github.com/MKhiriev/zone-keeper/models"
)

//go:generate mockgen -source=session.go -destination=../mock/auth_mock.go -package=mock

// Session tracks the two external inputs the sync mediator depends on:
// whether the user is signed in and whether cloud backup is enabled.
// Every transition of either input fires the registered change
// listeners, from which the mediator re-resolves its store mode.
//
// The session performs no credential verification of its own. The token
// is issued and verified by the remote store; locally it is only decoded
// to extract the user id and expiry.
type Session interface {
	// SignIn decodes token, stores it and fires the change listeners.
	// Fails with ErrInvalidToken or ErrTokenExpired without touching the
	// current session state.
	SignIn(ctx context.Context, token string) error

	// SignOut clears the session and fires the change listeners. Safe to
	// call when already signed out.
	SignOut(ctx context.Context)

	UserID() string
	Token() string

	// Authenticated reports whether a token is held and not yet expired.
	Authenticated() bool

	BackupEnabled() bool

	// SetBackupEnabled persists the flag and fires the change listeners
	// when the value actually changed.
	SetBackupEnabled(ctx context.Context, enabled bool) error

	DateOnlyDisplay() bool

	// SetDateOnlyDisplay persists the flight-date display preference.
	// A pure display setting: it never fires the change listeners.
	SetDateOnlyDisplay(ctx context.Context, enabled bool) error

	// StoreMode resolves the current mode from the two inputs.
	StoreMode() models.StoreMode

	// OnChange registers fn to run after every session transition.
	// Listeners are invoked synchronously in registration order.
	OnChange(fn func())
}

type sessionManager struct {
	settings store.SettingsRepository
	logger   *logger.Logger

	mu            sync.RWMutex
	token         string
	userID        string
	expiresAt     time.Time
	backupEnabled bool
	dateOnly      bool
	listeners     []func()
}

// NewSession restores the persisted preferences from settings and
// returns a signed-out session.
func NewSession(ctx context.Context, settings store.SettingsRepository, log *logger.Logger) (Session, error) {
	backupEnabled, err := settings.GetBool(ctx, store.KeyCloudBackupEnabled)
	if err != nil {
		return nil, fmt.Errorf("restore backup flag: %w", err)
	}
	dateOnly, err := settings.GetBool(ctx, store.KeyDateOnlyDisplay)
	if err != nil {
		return nil, fmt.Errorf("restore date-only display flag: %w", err)
	}

	return &sessionManager{
		settings:      settings,
		logger:        log,
		backupEnabled: backupEnabled,
		dateOnly:      dateOnly,
	}, nil
}

// SignIn implements [Session].
func (s *sessionManager) SignIn(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	userID, expiresAt, err := decodeToken(token)
	if err != nil {
		return err
	}
	if !expiresAt.IsZero() && expiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}

	s.mu.Lock()
	s.token = token
	s.userID = userID
	s.expiresAt = expiresAt
	s.mu.Unlock()

	s.logger.Info().Str("uid", userID).Msg("user signed in")
	s.notify()
	return nil
}

// SignOut implements [Session].
func (s *sessionManager) SignOut(_ context.Context) {
	s.mu.Lock()
	wasSignedIn := s.token != ""
	s.token = ""
	s.userID = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if !wasSignedIn {
		return
	}

	s.logger.Info().Msg("user signed out")
	s.notify()
}

// UserID implements [Session].
func (s *sessionManager) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Token implements [Session].
func (s *sessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated implements [Session].
func (s *sessionManager) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return false
	}
	return s.expiresAt.IsZero() || s.expiresAt.After(time.Now())
}

// BackupEnabled implements [Session].
func (s *sessionManager) BackupEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backupEnabled
}

// SetBackupEnabled implements [Session].
func (s *sessionManager) SetBackupEnabled(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	if s.backupEnabled == enabled {
		s.mu.Unlock()
		return nil
	}
	s.backupEnabled = enabled
	s.mu.Unlock()

	if err := s.settings.SetBool(ctx, store.KeyCloudBackupEnabled, enabled); err != nil {
		return fmt.Errorf("persist backup flag: %w", err)
	}

	s.notify()
	return nil
}

// DateOnlyDisplay implements [Session].
func (s *sessionManager) DateOnlyDisplay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dateOnly
}

// SetDateOnlyDisplay implements [Session].
func (s *sessionManager) SetDateOnlyDisplay(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	if s.dateOnly == enabled {
		s.mu.Unlock()
		return nil
	}
	s.dateOnly = enabled
	s.mu.Unlock()

	if err := s.settings.SetBool(ctx, store.KeyDateOnlyDisplay, enabled); err != nil {
		return fmt.Errorf("persist date-only display flag: %w", err)
	}
	return nil
}

// StoreMode implements [Session].
func (s *sessionManager) StoreMode() models.StoreMode {
	return models.ResolveStoreMode(s.Authenticated(), s.BackupEnabled())
}

// OnChange implements [Session].
func (s *sessionManager) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *sessionManager) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// decodeToken extracts the subject and expiry without verifying the
// signature. Verification happens server-side; a tampered token only
// produces rejected remote requests.
func decodeToken(tokenString string) (string, time.Time, error) {
	if tokenString == "" {
		return "", time.Time{}, ErrInvalidToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", time.Time{}, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	var expiresAt time.Time
	if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
		expiresAt = exp.Time
	}

	return sub, expiresAt, nil
}
