package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetString(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectSettingQuery(key)
	if err != nil {
		return "", err
	}

	var value string
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: key=%s", ErrSettingNotFound, key)
	}
	if scanErr != nil {
		logger.FromContext(ctx).Err(scanErr).
			Str("func", "settingsRepository.GetString").
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return value, nil
}

func (r *settingsRepository) SetString(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSettingQuery(key, value, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsRepository.SetString").
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetBool reads a boolean setting. An absent key reads as false.
func (r *settingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := r.GetString(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(value)
}

func (r *settingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	return r.SetString(ctx, key, strconv.FormatBool(value))
}

// GetInt reads an integer setting. An absent key reads as zero.
func (r *settingsRepository) GetInt(ctx context.Context, key string) (int64, error) {
	value, err := r.GetString(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

func (r *settingsRepository) SetInt(ctx context.Context, key string, value int64) error {
	return r.SetString(ctx, key, strconv.FormatInt(value, 10))
}

// GetTime reads a timestamp setting. An absent key reads as the zero time.
func (r *settingsRepository) GetTime(ctx context.Context, key string) (time.Time, error) {
	value, err := r.GetString(ctx, key)
	if errors.Is(err, ErrSettingNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, value)
}

func (r *settingsRepository) SetTime(ctx context.Context, key string, value time.Time) error {
	return r.SetString(ctx, key, value.UTC().Format(time.RFC3339Nano))
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSettingQuery(key)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
