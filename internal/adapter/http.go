// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/validators"
	"github.com/MKhiriev/zone-keeper/models"
)

// maxBatchSize caps one batched upsert round trip.
const maxBatchSize = 500

type httpRemoteStore struct {
	client    *resty.Client
	watchURL  string
	retry     retryPolicy
	validator validators.ShapeValidator
	colors    ColorState

	mu           sync.RWMutex
	token        string
	lastOwnWrite time.Time

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of
// [RemoteStore]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteStore(
	cfg config.Remote,
	syncCfg config.Sync,
	validator validators.ShapeValidator,
	colors ColorState,
	logger *logger.Logger,
) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	watchURL := cfg.WatchURL
	if watchURL == "" {
		watchURL = deriveWatchURL(baseURL)
	}

	return &httpRemoteStore{
		client:   client,
		watchURL: watchURL,
		retry: retryPolicy{
			attempts:  syncCfg.RetryAttempts,
			baseDelay: syncCfg.RetryBaseDelay,
		},
		validator: validator,
		colors:    colors,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func deriveWatchURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}

// SetToken implements [RemoteStore]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// LastOwnWrite implements [RemoteStore].
func (h *httpRemoteStore) LastOwnWrite() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastOwnWrite
}

func (h *httpRemoteStore) recordOwnWrite(at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if at.After(h.lastOwnWrite) {
		h.lastOwnWrite = at
	}
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) (*resty.Request, error) {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token), nil
}

// LoadShapes implements [RemoteStore]. Tombstones are filtered out and
// the color unification step is applied to the remaining active shapes
// before they are returned.
func (h *httpRemoteStore) LoadShapes(ctx context.Context, uid string) ([]models.Shape, error) {
	all, err := h.LoadAllShapes(ctx, uid)
	if err != nil {
		return nil, err
	}

	shapes := make([]models.Shape, 0, len(all))
	for i := range all {
		if !all[i].IsDeleted() {
			shapes = append(shapes, all[i])
		}
	}

	if err = h.unifyColors(ctx, uid, shapes); err != nil {
		// color unification is best-effort: a failed metadata read must
		// not hide the successfully loaded shapes
		h.logger.Warn().Err(err).Str("uid", uid).Msg("color unification skipped")
	}

	return shapes, nil
}

// LoadAllShapes implements [RemoteStore].
func (h *httpRemoteStore) LoadAllShapes(ctx context.Context, uid string) ([]models.Shape, error) {
	var shapes []models.Shape

	err := h.retry.run(ctx, h.logger, "load all shapes", func() error {
		req, reqErr := h.authedRequest(ctx)
		if reqErr != nil {
			return reqErr
		}

		shapes = shapes[:0]
		resp, callErr := req.
			SetResult(&shapes).
			SetQueryParam("include_deleted", "true").
			Get(fmt.Sprintf("/users/%s/shapes", uid))
		if callErr != nil {
			return fmt.Errorf("%w: load shapes request: %w", ErrUnknown, callErr)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return nil, err
	}

	return shapes, nil
}

// SaveShapes implements [RemoteStore]. The batch is validated as a whole
// before any network call; oversized batches are split into chunks of
// maxBatchSize documents.
func (h *httpRemoteStore) SaveShapes(ctx context.Context, uid string, shapes []models.Shape) error {
	if len(shapes) == 0 {
		return nil
	}
	if err := h.validator.ValidateBatch(ctx, shapes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	if err := h.uploadBatches(ctx, uid, shapes); err != nil {
		return err
	}

	return h.bumpMetadata(ctx, uid, nil)
}

func (h *httpRemoteStore) uploadBatches(ctx context.Context, uid string, shapes []models.Shape) error {
	for start := 0; start < len(shapes); start += maxBatchSize {
		end := min(start+maxBatchSize, len(shapes))
		chunk := shapes[start:end]

		err := h.retry.run(ctx, h.logger, "save shapes batch", func() error {
			req, reqErr := h.authedRequest(ctx)
			if reqErr != nil {
				return reqErr
			}

			resp, callErr := req.
				SetBody(chunk).
				Post(fmt.Sprintf("/users/%s/shapes/batch", uid))
			if callErr != nil {
				return fmt.Errorf("%w: save shapes request: %w", ErrUnknown, callErr)
			}
			return mapHTTPError(resp)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// AddShape implements [RemoteStore].
func (h *httpRemoteStore) AddShape(ctx context.Context, uid string, shape models.Shape) error {
	return h.upsertShape(ctx, uid, shape, "add shape")
}

// UpdateShape implements [RemoteStore].
func (h *httpRemoteStore) UpdateShape(ctx context.Context, uid string, shape models.Shape) error {
	return h.upsertShape(ctx, uid, shape, "update shape")
}

func (h *httpRemoteStore) upsertShape(ctx context.Context, uid string, shape models.Shape, opName string) error {
	if err := h.validator.ValidateShape(ctx, shape); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	err := h.retry.run(ctx, h.logger, opName, func() error {
		req, reqErr := h.authedRequest(ctx)
		if reqErr != nil {
			return reqErr
		}

		resp, callErr := req.
			SetBody(shape).
			Put(fmt.Sprintf("/users/%s/shapes/%s", uid, shape.ID))
		if callErr != nil {
			return fmt.Errorf("%w: %s request: %w", ErrUnknown, opName, callErr)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return err
	}

	return h.bumpMetadata(ctx, uid, nil)
}

// RemoveShape implements [RemoteStore]. The document is merged with a
// deletedAt timestamp and becomes a tombstone; it is never physically
// removed by this path.
func (h *httpRemoteStore) RemoveShape(ctx context.Context, uid string, id string) error {
	now := time.Now().UTC()

	err := h.retry.run(ctx, h.logger, "remove shape", func() error {
		req, reqErr := h.authedRequest(ctx)
		if reqErr != nil {
			return reqErr
		}

		resp, callErr := req.
			SetBody(map[string]any{"deletedAt": now}).
			Patch(fmt.Sprintf("/users/%s/shapes/%s", uid, id))
		if callErr != nil {
			return fmt.Errorf("%w: remove shape request: %w", ErrUnknown, callErr)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return err
	}

	return h.bumpMetadata(ctx, uid, nil)
}

// DeleteExpiredShapes implements [RemoteStore].
func (h *httpRemoteStore) DeleteExpiredShapes(ctx context.Context, uid string) (int, error) {
	all, err := h.LoadAllShapes(ctx, uid)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	var expired []models.Shape
	for i := range all {
		if all[i].IsDeleted() || !all[i].IsExpired(now) {
			continue
		}
		tombstone := all[i].Clone()
		tombstone.DeletedAt = &now
		tombstone.UpdatedAt = now
		expired = append(expired, tombstone)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	if err = h.uploadBatches(ctx, uid, expired); err != nil {
		return 0, err
	}

	return len(expired), h.bumpMetadata(ctx, uid, nil)
}

// LoadMetadata implements [RemoteStore].
func (h *httpRemoteStore) LoadMetadata(ctx context.Context, uid string) (models.SyncMetadata, error) {
	var meta models.SyncMetadata

	err := h.retry.run(ctx, h.logger, "load metadata", func() error {
		req, reqErr := h.authedRequest(ctx)
		if reqErr != nil {
			return reqErr
		}

		resp, callErr := req.
			SetResult(&meta).
			Get(fmt.Sprintf("/users/%s/metadata/server", uid))
		if callErr != nil {
			return fmt.Errorf("%w: load metadata request: %w", ErrUnknown, callErr)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return models.SyncMetadata{}, err
	}

	return meta, nil
}

// RecordColorChange implements [RemoteStore].
func (h *httpRemoteStore) RecordColorChange(ctx context.Context, uid string, at time.Time) error {
	return h.bumpMetadata(ctx, uid, &at)
}

// bumpMetadata writes a fresh lastModified (and optionally
// lastColorChange) after a successful mutation and records the value as
// this device's own write. The metadata endpoint merges omitted fields,
// so a nil colorChange leaves the remote lastColorChange untouched.
func (h *httpRemoteStore) bumpMetadata(ctx context.Context, uid string, colorChange *time.Time) error {
	now := time.Now().UTC()
	meta := models.SyncMetadata{LastModified: now, LastColorChange: colorChange}

	err := h.retry.run(ctx, h.logger, "bump metadata", func() error {
		req, reqErr := h.authedRequest(ctx)
		if reqErr != nil {
			return reqErr
		}

		resp, callErr := req.
			SetBody(meta).
			Put(fmt.Sprintf("/users/%s/metadata/server", uid))
		if callErr != nil {
			return fmt.Errorf("%w: bump metadata request: %w", ErrUnknown, callErr)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return err
	}

	h.recordOwnWrite(now)
	return nil
}
