package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zone-keeper/internal/config"
	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/validators"
	"github.com/MKhiriev/zone-keeper/models"
)

// fakeColorState is a test stand-in for the settings-backed color state.
type fakeColorState struct {
	changedAt time.Time
	color     string
}

func (f *fakeColorState) LastColorChange(context.Context) (time.Time, error) { return f.changedAt, nil }
func (f *fakeColorState) CurrentColor(context.Context) (string, error)       { return f.color, nil }

func testSyncConfig() config.Sync {
	return config.Sync{
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
	}
}

func newTestStore(t *testing.T, serverURL string, colors ColorState) RemoteStore {
	t.Helper()
	if colors == nil {
		colors = &fakeColorState{}
	}

	remote, err := NewHTTPRemoteStore(
		config.Remote{BaseURL: serverURL, RequestTimeout: 5 * time.Second},
		testSyncConfig(),
		validators.NewShapeValidator(),
		colors,
		logger.Nop(),
	)
	require.NoError(t, err)

	remote.SetToken("test-token")
	return remote
}

func circleShape(id, color string, updatedAt time.Time) models.Shape {
	radius := 500.0
	return models.Shape{
		ID:             id,
		Title:          "Zone " + id,
		ShapeType:      models.Circle,
		BaseCoordinate: models.Coordinate{Latitude: 55.75, Longitude: 37.61},
		Radius:         &radius,
		Color:          color,
		CreatedAt:      updatedAt,
		UpdatedAt:      updatedAt,
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://sync.example.com/", want: "https://sync.example.com"},
		{name: "schemeless", raw: "sync.example.com", want: "https://sync.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddShape_ValidationGate(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	bad := circleShape("c1", "#fff", time.Now().UTC())
	*bad.Radius = -5

	err := remote.AddShape(context.Background(), "u1", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.ErrorIs(t, err, validators.ErrInvalidRadius)
	assert.Zero(t, hits.Load(), "invalid shape must never reach the remote store")
}

func TestAddShape_RequiresToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	remote, err := NewHTTPRemoteStore(
		config.Remote{BaseURL: ts.URL},
		testSyncConfig(),
		validators.NewShapeValidator(),
		&fakeColorState{},
		logger.Nop(),
	)
	require.NoError(t, err)

	err = remote.AddShape(context.Background(), "u1", circleShape("c1", "#fff", time.Now().UTC()))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAddShape_UpsertsAndBumpsMetadata(t *testing.T) {
	var sawUpsert, sawMetadataBump atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/users/u1/shapes/c1":
			sawUpsert.Store(true)
		case r.Method == http.MethodPut && r.URL.Path == "/users/u1/metadata/server":
			sawMetadataBump.Store(true)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	err := remote.AddShape(context.Background(), "u1", circleShape("c1", "#fff", time.Now().UTC()))
	require.NoError(t, err)
	assert.True(t, sawUpsert.Load())
	assert.True(t, sawMetadataBump.Load())
	assert.False(t, remote.LastOwnWrite().IsZero(), "successful write must be recorded as own write")
}

func TestRecordColorChange_WritesMetadataTimestamp(t *testing.T) {
	var got models.SyncMetadata
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/u1/metadata/server", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	changedAt := time.Now().UTC().Truncate(time.Second)
	err := remote.RecordColorChange(context.Background(), "u1", changedAt)
	require.NoError(t, err)

	require.NotNil(t, got.LastColorChange, "recolor must publish lastColorChange, not only lastModified")
	assert.True(t, got.LastColorChange.Equal(changedAt))
	assert.False(t, remote.LastOwnWrite().IsZero(), "metadata write must be recorded as own write")
}

func TestLoadShapes_FiltersTombstonesAndUnifiesColor(t *testing.T) {
	now := time.Now().UTC()
	deletedAt := now.Add(-time.Minute)

	older := circleShape("a", "#old", now.Add(-time.Hour))
	newest := circleShape("b", "#remote", now)
	tombstone := circleShape("c", "#old", now)
	tombstone.DeletedAt = &deletedAt

	remoteColorChange := now.Add(-time.Minute)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/u1/shapes":
			assert.Equal(t, "true", r.URL.Query().Get("include_deleted"))
			require.NoError(t, json.NewEncoder(w).Encode([]models.Shape{older, newest, tombstone}))
		case "/users/u1/metadata/server":
			require.NoError(t, json.NewEncoder(w).Encode(models.SyncMetadata{
				LastModified:    now,
				LastColorChange: &remoteColorChange,
			}))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	// local color change is older than remote: remote side wins
	colors := &fakeColorState{changedAt: now.Add(-time.Hour), color: "#local"}
	remote := newTestStore(t, ts.URL, colors)

	shapes, err := remote.LoadShapes(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, shapes, 2, "tombstones must be filtered out")
	for _, s := range shapes {
		assert.Equal(t, "#remote", s.Color, "all active shapes must carry the unified color")
	}
}

func TestLoadShapes_LocalColorWinsWhenNewer(t *testing.T) {
	now := time.Now().UTC()
	shape := circleShape("a", "#remote", now.Add(-time.Hour))
	remoteColorChange := now.Add(-2 * time.Hour)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/u1/shapes":
			require.NoError(t, json.NewEncoder(w).Encode([]models.Shape{shape}))
		case "/users/u1/metadata/server":
			require.NoError(t, json.NewEncoder(w).Encode(models.SyncMetadata{
				LastModified:    now,
				LastColorChange: &remoteColorChange,
			}))
		}
	}))
	defer ts.Close()

	colors := &fakeColorState{changedAt: now, color: "#local"}
	remote := newTestStore(t, ts.URL, colors)

	shapes, err := remote.LoadShapes(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, "#local", shapes[0].Color)
}

func TestRemoveShape_SoftDelete(t *testing.T) {
	var patched atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch && r.URL.Path == "/users/u1/shapes/gone" {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "deletedAt")
			patched.Store(true)
		}
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	require.NoError(t, remote.RemoveShape(context.Background(), "u1", "gone"))
	assert.True(t, patched.Load())
}

func TestSaveShapes_RetriesTransientFailures(t *testing.T) {
	var batchHits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/shapes/batch") {
			if batchHits.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	err := remote.SaveShapes(context.Background(), "u1", []models.Shape{
		circleShape("a", "#fff", time.Now().UTC()),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), batchHits.Load(), "two failures then success within the attempt budget")
}

func TestSaveShapes_AuthFailureIsNotRetried(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	err := remote.SaveShapes(context.Background(), "u1", []models.Shape{
		circleShape("a", "#fff", time.Now().UTC()),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, int64(1), hits.Load())
}

func TestSaveShapes_RejectsDuplicateIDs(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	now := time.Now().UTC()
	err := remote.SaveShapes(context.Background(), "u1", []models.Shape{
		circleShape("dup", "#fff", now),
		circleShape("dup", "#fff", now),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Zero(t, hits.Load())
}

func TestDeleteExpiredShapes_TombstonesOnlyExpired(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	expired := circleShape("old", "#fff", past)
	expired.FlightEndDate = &past
	fresh := circleShape("new", "#fff", now)

	var uploaded []models.Shape
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/users/u1/shapes":
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode([]models.Shape{expired, fresh}))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/shapes/batch"):
			require.NoError(t, json.NewDecoder(r.Body).Decode(&uploaded))
		}
	}))
	defer ts.Close()

	remote := newTestStore(t, ts.URL, nil)

	count, err := remote.DeleteExpiredShapes(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, uploaded, 1)
	assert.Equal(t, "old", uploaded[0].ID)
	assert.NotNil(t, uploaded[0].DeletedAt)
}
