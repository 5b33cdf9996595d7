package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/wedding-medias-go/internal/mock"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/task"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func TestArchiveSnapshotHandler_Success(t *testing.T) {
	svc := &mock.MockSnapshotBuilder{Out: &model.Snapshot{Key: "fotos-casamiento-x.zip", SizeBytes: 10}}

	err := ArchiveSnapshotHandler(context.Background(), task.ArchiveSnapshotPayload{RequestedAt: "2025-03-02T01:00:00Z"}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Error("service not called")
	}
	if svc.In.RequestedAt != "2025-03-02T01:00:00Z" {
		t.Errorf("service got requestedAt %q", svc.In.RequestedAt)
	}
}

func TestArchiveSnapshotHandler_ServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantSkip  bool
	}{
		{"transient", errors.New("minio down"), false},
		{"nothing to export", media.ErrNothingToExport, true},
		{"disabled", media.ErrSnapshotsDisabled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mock.MockSnapshotBuilder{Err: tt.err}

			err := ArchiveSnapshotHandler(context.Background(), task.ArchiveSnapshotPayload{}, svc)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got error %v; want %v", err, tt.err)
			}
			if got := errors.Is(err, asynq.SkipRetry); got != tt.wantSkip {
				t.Errorf("SkipRetry = %v; want %v", got, tt.wantSkip)
			}
		})
	}
}
