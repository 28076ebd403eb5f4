// Package workers runs the long-lived goroutines of the client under a
// shared lifecycle: they start together and the first failure stops the rest.
package workers

import "context"

// Worker is a unit of background work supervised by [Workers].
//
// Run must block until the work is done or ctx is cancelled. Returning a
// non-nil error cancels the context of every other worker in the group.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
