package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	limit   int
}

// NewWorkers returns a Workers that runs at most limit workers at once.
// A non-positive limit means no bound.
func NewWorkers(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker and waits for all of them. The first error
// cancels the context passed to the workers still running and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	return g.Wait()
}
