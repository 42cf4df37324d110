package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/internal/validators"
)

// retryPolicy is the retry-with-delay policy wrapping every remote
// write: up to attempts tries with a linearly increasing delay
// (baseDelay × attempt number) between them.
type retryPolicy struct {
	attempts  int
	baseDelay time.Duration
}

// isRetryable reports whether a failure is eligible for another attempt.
// Authentication and validation failures propagate immediately; all
// other failures are retried.
func isRetryable(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrInvalidData) {
		return false
	}
	if errors.Is(err, validators.ErrInvalidShape) {
		return false
	}
	return true
}

// run executes op under the policy. Delays respect ctx cancellation.
func (p retryPolicy) run(ctx context.Context, log *logger.Logger, opName string, op func() error) error {
	var lastErr error

	for attempt := 1; attempt <= p.attempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}

		log.Warn().Err(lastErr).
			Str("op", opName).
			Int("attempt", attempt).
			Msg("remote operation failed, will retry")

		if attempt == p.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.baseDelay * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%s: retries exhausted: %w", opName, lastErr)
}
