// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events carries change notifications between the sync engine
// and its observers over typed broadcast channels. Publishing is
// coalesced so that a burst of mutations produces a single notification,
// and fan-out never blocks: a subscriber that stops draining its channel
// misses events instead of stalling the engine.
package events

import (
	"sync"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
)

// Kind identifies a class of engine event.
type Kind string

const (
	// ShapesChanged fires after any mutation of the local shape
	// collection, including reconciliation and realtime pulls.
	ShapesChanged Kind = "shapesChanged"

	// SyncStatusChanged fires on every transition of the sync status
	// state machine.
	SyncStatusChanged Kind = "syncStatusChanged"
)

// Event is a single broadcast notification.
type Event struct {
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

const (
	// subscriberBuffer bounds how far a subscriber may lag before it
	// starts missing events.
	subscriberBuffer = 16

	defaultDebounce = 100 * time.Millisecond

	// maxWaitFactor bounds how long a steady stream of publishes can
	// keep restarting the debounce timer before a broadcast is forced
	// out, as a multiple of the debounce window.
	maxWaitFactor = 4
)

// pendingBroadcast is a scheduled broadcast whose timer restarts on
// every new publish, capped by deadline.
type pendingBroadcast struct {
	timer    *time.Timer
	deadline time.Time
}

// Bus is a debounced broadcast event bus.
type Bus struct {
	logger   *logger.Logger
	debounce time.Duration

	mu          sync.Mutex
	closed      bool
	nextID      int
	subscribers map[int]chan Event
	pending     map[Kind]*pendingBroadcast
}

// NewBus returns a bus debouncing each event kind: a broadcast fires
// one debounce window after the last publish of a burst, at the latest
// maxWaitFactor windows after the first. A non-positive debounce falls
// back to the default window.
func NewBus(debounce time.Duration, log *logger.Logger) *Bus {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &Bus{
		logger:      log,
		debounce:    debounce,
		subscribers: make(map[int]chan Event),
		pending:     make(map[Kind]*pendingBroadcast),
	}
}

// Subscribe registers a new observer. The returned cancel function
// removes the subscription and closes the channel; it is safe to call
// more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Publish schedules a broadcast of kind. A publish while one is already
// pending restarts the debounce timer, so a burst settles into a single
// broadcast after its last trigger; the restart is capped at
// maxWaitFactor debounce windows past the first trigger so continuous
// publishing cannot starve subscribers.
func (b *Bus) Publish(kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	now := time.Now()
	if p, scheduled := b.pending[kind]; scheduled {
		wait := b.debounce
		if remaining := p.deadline.Sub(now); remaining < wait {
			wait = remaining
		}
		if wait < 0 {
			wait = 0
		}
		p.timer.Reset(wait)
		return
	}

	b.pending[kind] = &pendingBroadcast{
		timer:    time.AfterFunc(b.debounce, func() { b.broadcast(kind) }),
		deadline: now.Add(maxWaitFactor * b.debounce),
	}
}

func (b *Bus) broadcast(kind Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.pending, kind)
	if b.closed {
		return
	}

	event := Event{Kind: kind, At: time.Now().UTC()}
	for id, sub := range b.subscribers {
		select {
		case sub <- event:
		default:
			// subscriber is not draining; dropping beats blocking the
			// engine
			b.logger.Debug().
				Str("kind", string(kind)).
				Int("subscriber", id).
				Msg("event dropped for slow subscriber")
		}
	}
}

// Close stops all pending timers and closes every subscriber channel.
// Publish and Subscribe become no-ops afterwards.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for kind, p := range b.pending {
		p.timer.Stop()
		delete(b.pending, kind)
	}
	for id, sub := range b.subscribers {
		delete(b.subscribers, id)
		close(sub)
	}
}
