package task

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

// EnqueueArchiveSnapshot returns the id of the queued task.
func (d *Dispatcher) EnqueueArchiveSnapshot(ctx context.Context, requestedAt string) (string, error) {
	t, err := NewArchiveSnapshotTask(requestedAt)
	if err != nil {
		return "", err
	}
	info, err := d.client.EnqueueContext(ctx, t)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
