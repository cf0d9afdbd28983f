package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts all workers and waits for them. As soon as one of them returns,
// with or without an error, the others are cancelled. The first error is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(groupCtx)
	defer cancel()

	for _, worker := range w.workers {
		group.Go(func() error {
			defer cancel()
			return worker.Run(runCtx)
		})
	}

	return group.Wait()
}
