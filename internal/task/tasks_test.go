package task

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"

	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func TestArchiveSnapshotTask_RoundTrip(t *testing.T) {
	tk, err := NewArchiveSnapshotTask("2025-03-02T01:00:00Z")
	if err != nil {
		t.Fatalf("NewArchiveSnapshotTask: %v", err)
	}
	if tk.Type() != TypeArchiveSnapshot {
		t.Errorf("type = %q; want %q", tk.Type(), TypeArchiveSnapshot)
	}

	p, err := ParseArchiveSnapshotPayload(tk)
	if err != nil {
		t.Fatalf("ParseArchiveSnapshotPayload: %v", err)
	}
	if p.RequestedAt != "2025-03-02T01:00:00Z" {
		t.Errorf("RequestedAt = %q", p.RequestedAt)
	}
}

func TestParseArchiveSnapshotPayload_Invalid(t *testing.T) {
	if _, err := ParseArchiveSnapshotPayload(asynq.NewTask(TypeArchiveSnapshot, []byte("{"))); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestDispatcher_Enqueue(t *testing.T) {
	mr := miniredis.RunT(t)
	d := NewDispatcher(mr.Addr(), "")
	t.Cleanup(func() { _ = d.Close() })

	id, err := d.EnqueueArchiveSnapshot(context.Background(), "2025-03-02T01:00:00Z")
	if err != nil {
		t.Fatalf("EnqueueArchiveSnapshot: %v", err)
	}
	if id == "" {
		t.Error("expected a task id")
	}
}

func TestNoopDispatcher(t *testing.T) {
	_, err := NewNoopDispatcher().EnqueueArchiveSnapshot(context.Background(), "")
	if !errors.Is(err, media.ErrSnapshotsDisabled) {
		t.Fatalf("expected ErrSnapshotsDisabled, got %v", err)
	}
}
