package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/metrics"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type ExportOptions struct {
	ArchiveName string
	Folder      string
	Concurrency int
}

type exportMediaSrv struct {
	lister port.MediaLister
	store  port.MediaStore
	opts   ExportOptions
}

var _ port.MediaExporter = (*exportMediaSrv)(nil)

func NewMediaExporter(lister port.MediaLister, store port.MediaStore, opts ExportOptions) port.MediaExporter {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &exportMediaSrv{lister: lister, store: store, opts: opts}
}

// ExportAll downloads every listed asset and packs them into a zip archive.
// Assets whose download fails are logged and left out of the archive.
func (s *exportMediaSrv) ExportAll(ctx context.Context) (*port.ExportOutput, error) {
	resources, err := s.lister.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, ErrNothingToExport
	}

	blobs := make([][]byte, len(resources))
	fetched := make([]bool, len(resources))
	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for i, r := range resources {
		g.Go(func() error {
			data, err := s.store.Fetch(ctx, r.SecureURL)
			if err != nil {
				logger.Warnf(ctx, "skipping %q in export: %v", r.PublicID, err)
				return nil
			}
			blobs[i], fetched[i] = data, true
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	used := make(map[string]int, len(resources))
	out := &port.ExportOutput{FileName: s.opts.ArchiveName}

	for i, r := range resources {
		if !fetched[i] {
			out.Omitted = append(out.Omitted, r.PublicID)
			continue
		}
		name := uniqueName(r.ArchiveName(), used)
		if s.opts.Folder != "" {
			name = s.opts.Folder + "/" + name
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Store,
			Modified: r.CreatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("adding %q to archive: %w", name, err)
		}
		if _, err := w.Write(blobs[i]); err != nil {
			return nil, fmt.Errorf("writing %q to archive: %w", name, err)
		}
		out.Included++
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}

	metrics.ExportedAssets.WithLabelValues("included").Add(float64(out.Included))
	metrics.ExportedAssets.WithLabelValues("omitted").Add(float64(len(out.Omitted)))

	if out.Included == 0 {
		return nil, fmt.Errorf("%w: %d assets", ErrExportFailed, len(resources))
	}
	if len(out.Omitted) > 0 {
		logger.Warnf(ctx, "export finished with %d of %d assets omitted", len(out.Omitted), len(resources))
	}
	logger.Infof(ctx, "✅ exported %d assets (%d bytes)", out.Included, buf.Len())

	out.Archive = buf.Bytes()
	return out, nil
}

// uniqueName appends " (n)" before the extension when name was already used.
func uniqueName(name string, used map[string]int) string {
	key := strings.ToLower(name)
	n, taken := used[key]
	used[key] = n + 1
	if !taken {
		return name
	}

	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := n + 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, clash := used[strings.ToLower(candidate)]; !clash {
			used[strings.ToLower(candidate)] = 1
			return candidate
		}
	}
}
