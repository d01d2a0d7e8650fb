// Package workers provides abstractions for managing and running background
// workers in the application. It defines the Worker interface and a Workers
// aggregate that allows starting multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker. Run starts
// the worker's execution; implementations must not block but spawn their
// goroutines internally, exiting them when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
