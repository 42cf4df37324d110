package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zone-keeper/internal/logger"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, ch <-chan Event, within time.Duration) {
	t.Helper()
	select {
	case event := <-ch:
		t.Fatalf("unexpected event %q", event.Kind)
	case <-time.After(within):
	}
}

func TestPublish_CoalescesBurst(t *testing.T) {
	bus := NewBus(50*time.Millisecond, logger.Nop())
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	for i := 0; i < 10; i++ {
		bus.Publish(ShapesChanged)
	}

	event := recvEvent(t, ch)
	assert.Equal(t, ShapesChanged, event.Kind)
	assertNoEvent(t, ch, 150*time.Millisecond)
}

func TestPublish_RestartsDebounceTimer(t *testing.T) {
	bus := NewBus(100*time.Millisecond, logger.Nop())
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(ShapesChanged)
	time.Sleep(60 * time.Millisecond)
	bus.Publish(ShapesChanged)

	// without the restart the first publish would have fired by now
	assertNoEvent(t, ch, 60*time.Millisecond)

	event := recvEvent(t, ch)
	assert.Equal(t, ShapesChanged, event.Kind)
}

func TestPublish_SteadyStreamStillEmits(t *testing.T) {
	bus := NewBus(30*time.Millisecond, logger.Nop())
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	// keep restarting the timer faster than the debounce window; the
	// max-wait deadline must force a broadcast out anyway
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		bus.Publish(ShapesChanged)
		select {
		case event := <-ch:
			assert.Equal(t, ShapesChanged, event.Kind)
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	t.Fatal("continuous publishing starved the broadcast past the max-wait deadline")
}

func TestPublish_KindsAreIndependent(t *testing.T) {
	bus := NewBus(20*time.Millisecond, logger.Nop())
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(ShapesChanged)
	bus.Publish(SyncStatusChanged)

	kinds := map[Kind]bool{
		recvEvent(t, ch).Kind: true,
		recvEvent(t, ch).Kind: true,
	}
	assert.True(t, kinds[ShapesChanged])
	assert.True(t, kinds[SyncStatusChanged])
}

func TestSubscribe_FanOut(t *testing.T) {
	bus := NewBus(10*time.Millisecond, logger.Nop())
	defer bus.Close()

	first, cancelFirst := bus.Subscribe()
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	bus.Publish(ShapesChanged)

	assert.Equal(t, ShapesChanged, recvEvent(t, first).Kind)
	assert.Equal(t, ShapesChanged, recvEvent(t, second).Kind)
}

func TestCancel_StopsDelivery(t *testing.T) {
	bus := NewBus(10*time.Millisecond, logger.Nop())
	defer bus.Close()

	ch, cancel := bus.Subscribe()
	cancel()
	cancel() // second call is a no-op

	_, ok := <-ch
	assert.False(t, ok, "cancelled subscription channel must be closed")

	bus.Publish(ShapesChanged)
	time.Sleep(50 * time.Millisecond)
}

func TestSlowSubscriberNeverBlocksPublisher(t *testing.T) {
	bus := NewBus(time.Millisecond, logger.Nop())
	defer bus.Close()

	// never drained
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Publish(ShapesChanged)
			time.Sleep(2 * time.Millisecond)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestClose_ClosesSubscribers(t *testing.T) {
	bus := NewBus(time.Hour, logger.Nop())

	ch, _ := bus.Subscribe()
	bus.Publish(ShapesChanged) // pending timer must be stopped by Close
	bus.Close()

	_, ok := <-ch
	assert.False(t, ok)

	// post-close operations are no-ops
	bus.Publish(ShapesChanged)
	late, _ := bus.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}
