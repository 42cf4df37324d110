package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/zone-keeper/models"
)

// SubscribeMetadata implements [RemoteStore]. It dials the metadata
// watch endpoint and streams decoded [models.SyncMetadata] documents
// into the returned channel. The channel is closed when the connection
// breaks or ctx is cancelled; reconnection is the caller's concern.
func (h *httpRemoteStore) SubscribeMetadata(ctx context.Context, uid string) (<-chan models.SyncMetadata, error) {
	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	endpoint := fmt.Sprintf("%s/users/%s/metadata/watch", h.watchURL, uid)
	header := http.Header{"Authorization": {"Bearer " + token}}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: metadata watch dial rejected", ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("%w: metadata watch dial: %w", ErrUnknown, err)
	}

	updates := make(chan models.SyncMetadata, 8)
	done := make(chan struct{})

	// closer goroutine: tears the connection down on ctx cancellation so
	// the reader below unblocks; exits when the reader goes away first
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	go func() {
		defer close(updates)
		defer close(done)
		defer conn.Close()

		for {
			var meta models.SyncMetadata
			if err := conn.ReadJSON(&meta); err != nil {
				if ctx.Err() == nil {
					h.logger.Warn().Err(err).
						Str("uid", uid).
						Msg("metadata watch stream closed")
				}
				return
			}

			select {
			case updates <- meta:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
