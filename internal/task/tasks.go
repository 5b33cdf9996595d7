package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeArchiveSnapshot = "archive:snapshot"

// snapshotTimeout bounds one archive build: every asset is downloaded again.
const snapshotTimeout = 15 * time.Minute

type ArchiveSnapshotPayload struct {
	RequestedAt string `json:"requested_at"`
}

// NewArchiveSnapshotTask creates an Asynq task building an export archive.
func NewArchiveSnapshotTask(requestedAt string) (*asynq.Task, error) {
	p := ArchiveSnapshotPayload{RequestedAt: requestedAt}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal archive-snapshot payload: %w", err)
	}
	return asynq.NewTask(TypeArchiveSnapshot, data, asynq.MaxRetry(3), asynq.Timeout(snapshotTimeout)), nil
}

// ParseArchiveSnapshotPayload parses the task payload to ArchiveSnapshotPayload.
func ParseArchiveSnapshotPayload(t *asynq.Task) (ArchiveSnapshotPayload, error) {
	var p ArchiveSnapshotPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ArchiveSnapshotPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
