package mock

import (
	"context"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	SnapshotCalled bool
	RequestedAt    string
	TaskIDOut      string
	SnapshotErr    error
}

var _ port.TaskDispatcher = (*MockDispatcher)(nil)

func (m *MockDispatcher) EnqueueArchiveSnapshot(ctx context.Context, requestedAt string) (string, error) {
	m.SnapshotCalled = true
	m.RequestedAt = requestedAt
	if m.SnapshotErr != nil {
		return "", m.SnapshotErr
	}
	return m.TaskIDOut, nil
}
