package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsRepo(t *testing.T) (SettingsRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &DB{DB: mockDB, logger: logger.Nop()}
	return NewSettingsRepository(db, logger.Nop()), mock
}

func TestSettingsRepository_GetString_Missing(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery("SELECT value FROM settings WHERE key =").
		WithArgs(KeyDefaultColor).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetString(context.Background(), KeyDefaultColor)
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingsRepository_TypedGetters_DefaultOnMissing(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrNoRows)
	enabled, err := repo.GetBool(ctx, KeyCloudBackupEnabled)
	require.NoError(t, err)
	assert.False(t, enabled)

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrNoRows)
	counter, err := repo.GetInt(ctx, KeySyncRetryCounter)
	require.NoError(t, err)
	assert.Zero(t, counter)

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrNoRows)
	ts, err := repo.GetTime(ctx, KeyLastSyncAt)
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}

func TestSettingsRepository_TimeRoundTrip(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 30, 45, 123456789, time.UTC)

	mock.ExpectExec("INSERT INTO settings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.SetTime(ctx, KeyLastSyncAt, at))

	mock.ExpectQuery("SELECT value FROM settings WHERE key =").
		WithArgs(KeyLastSyncAt).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(at.Format(time.RFC3339Nano)))

	got, err := repo.GetTime(ctx, KeyLastSyncAt)
	require.NoError(t, err)
	assert.True(t, at.Equal(got))
}

func TestSettingsRepository_BoolRoundTrip(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO settings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.SetBool(ctx, KeyCloudBackupEnabled, true))

	mock.ExpectQuery("SELECT value FROM settings WHERE key =").
		WithArgs(KeyCloudBackupEnabled).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("true"))

	enabled, err := repo.GetBool(ctx, KeyCloudBackupEnabled)
	require.NoError(t, err)
	assert.True(t, enabled)
}
