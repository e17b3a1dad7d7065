// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs
// multiple workers concurrently with a bounded number in flight.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work
// run by [Workers].
//
// Run should return once its work is done or ctx is cancelled.
//
// Example implementation:
//
//	type fetchWorker struct{ id int64 }
//
//	func (w *fetchWorker) Run(ctx context.Context) error {
//	    // fetch payment w.id
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
