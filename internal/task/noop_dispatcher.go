package task

import (
	"context"

	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

// NoopDispatcher is used when no Redis is configured; snapshots are then unavailable.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueArchiveSnapshot(ctx context.Context, requestedAt string) (string, error) {
	return "", media.ErrSnapshotsDisabled
}
