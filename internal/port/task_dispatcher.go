package port

import "context"

// TaskDispatcher enqueues asynchronous tasks.
type TaskDispatcher interface {
	EnqueueArchiveSnapshot(ctx context.Context, requestedAt string) (string, error)
}
