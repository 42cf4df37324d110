package service

import "context"

// gate is an asynchronous mutex built on a capacity-1 channel. Waiters
// park on the channel send instead of polling, and give up when their
// context is cancelled.
type gate struct {
	slot chan struct{}
}

func newGate() *gate {
	return &gate{slot: make(chan struct{}, 1)}
}

// acquire blocks until the gate is free or ctx is done.
func (g *gate) acquire(ctx context.Context) error {
	select {
	case g.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release frees the gate. Must only be called after a successful
// acquire.
func (g *gate) release() {
	<-g.slot
}
