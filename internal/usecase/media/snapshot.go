package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/validation"
)

const snapshotTimeLayout = "20060102T150405Z"

// SnapshotPrefix derives the object key prefix of snapshots from the archive name.
func SnapshotPrefix(archiveName string) string {
	return strings.TrimSuffix(archiveName, path.Ext(archiveName))
}

type snapshotRequesterSrv struct {
	tasks port.TaskDispatcher
}

var _ port.SnapshotRequester = (*snapshotRequesterSrv)(nil)

// NewSnapshotRequester returns a requester answering ErrSnapshotsDisabled when tasks is nil.
func NewSnapshotRequester(tasks port.TaskDispatcher) port.SnapshotRequester {
	return &snapshotRequesterSrv{tasks: tasks}
}

func (s *snapshotRequesterSrv) RequestSnapshot(ctx context.Context) (string, error) {
	if s.tasks == nil {
		return "", ErrSnapshotsDisabled
	}
	id, err := s.tasks.EnqueueArchiveSnapshot(ctx, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("enqueue archive snapshot: %w", err)
	}
	logger.Infof(ctx, "archive snapshot #%s enqueued", id)
	return id, nil
}

type snapshotBuilderSrv struct {
	exporter port.MediaExporter
	strg     port.Storage
	prefix   string
	now      func() time.Time
}

var _ port.SnapshotBuilder = (*snapshotBuilderSrv)(nil)

func NewSnapshotBuilder(exporter port.MediaExporter, strg port.Storage, prefix string) port.SnapshotBuilder {
	return &snapshotBuilderSrv{exporter: exporter, strg: strg, prefix: prefix, now: time.Now}
}

// BuildSnapshot runs a bulk export and stores the archive under a unique key.
func (s *snapshotBuilderSrv) BuildSnapshot(ctx context.Context, in port.BuildSnapshotInput) (*model.Snapshot, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if s.strg == nil {
		return nil, ErrSnapshotsDisabled
	}

	out, err := s.exporter.ExportAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	key := fmt.Sprintf("%s-%s-%s.zip", s.prefix, now.Format(snapshotTimeLayout), uuid.NewString())
	size := int64(len(out.Archive))
	opts := map[string]string{"Content-Type": "application/zip"}
	if in.RequestedAt != "" {
		opts["requested-at"] = in.RequestedAt
	}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(out.Archive), size, opts); err != nil {
		return nil, fmt.Errorf("saving snapshot %q: %w", key, err)
	}

	logger.Infof(ctx, "✅ snapshot %q stored (%d assets, %d omitted)", key, out.Included, len(out.Omitted))
	return &model.Snapshot{Key: key, SizeBytes: size, LastModified: now}, nil
}

type snapshotListerSrv struct {
	strg   port.Storage
	prefix string
	ttl    time.Duration
}

var _ port.SnapshotLister = (*snapshotListerSrv)(nil)

func NewSnapshotLister(strg port.Storage, prefix string, ttl time.Duration) port.SnapshotLister {
	return &snapshotListerSrv{strg: strg, prefix: prefix, ttl: ttl}
}

// ListSnapshots returns the stored archives, newest first, each with a download link.
func (s *snapshotListerSrv) ListSnapshots(ctx context.Context) ([]model.Snapshot, error) {
	if s.strg == nil {
		return nil, ErrSnapshotsDisabled
	}

	files, err := s.strg.ListFiles(ctx, s.prefix)
	if err != nil {
		return nil, err
	}

	snaps := make([]model.Snapshot, 0, len(files))
	for _, f := range files {
		url, err := s.strg.GeneratePresignedDownloadURL(ctx, f.Key, path.Base(f.Key), s.ttl)
		if err != nil {
			return nil, fmt.Errorf("signing %q: %w", f.Key, err)
		}
		snaps = append(snaps, model.Snapshot{
			Key:          f.Key,
			SizeBytes:    f.SizeBytes,
			LastModified: f.LastModified,
			URL:          url,
		})
	}
	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].LastModified.After(snaps[j].LastModified)
	})
	return snaps, nil
}
