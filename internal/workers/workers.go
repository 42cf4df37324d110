// Package workers aggregates the engine's long-running background
// workers (the realtime watcher, the periodic sync job) behind a single
// start/stop pair used at process startup and shutdown.
package workers

import "context"

// Worker is a background worker with an explicit lifecycle. Start must
// not block; Stop blocks until the worker has fully exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop shuts workers down in reverse registration order, so consumers
// stop before the producers they depend on.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
