package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/task"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

// ArchiveSnapshotHandler handles an archive-snapshot task.
// It converts the incoming task payload to the input expected by
// the snapshot builder and delegates the call. Failures that a retry cannot
// fix are marked with asynq.SkipRetry.
func ArchiveSnapshotHandler(ctx context.Context, p task.ArchiveSnapshotPayload, svc port.SnapshotBuilder) error {
	snap, err := svc.BuildSnapshot(ctx, port.BuildSnapshotInput{RequestedAt: p.RequestedAt})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to build archive snapshot requested at %s: %v", p.RequestedAt, err)
		if errors.Is(err, media.ErrNothingToExport) || errors.Is(err, media.ErrInvalidInput) || errors.Is(err, media.ErrSnapshotsDisabled) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	logger.Infof(ctx, "✅  Successfully stored archive snapshot %q (%d bytes)", snap.Key, snap.SizeBytes)
	return nil
}
