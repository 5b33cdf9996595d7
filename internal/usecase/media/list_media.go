package media

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/metrics"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// ListOptions locates the two collections in the remote store.
type ListOptions struct {
	ImagesFolder string
	VideosFolder string
	MaxResults   int
}

type listMediaSrv struct {
	store port.MediaStore
	opts  ListOptions
}

var _ port.MediaLister = (*listMediaSrv)(nil)

func NewMediaLister(store port.MediaStore, opts ListOptions) port.MediaLister {
	return &listMediaSrv{store: store, opts: opts}
}

func (s *listMediaSrv) ListAll(ctx context.Context) ([]model.MediaAsset, error) {
	resources, err := s.ListResources(ctx)
	if err != nil {
		return nil, err
	}

	assets := make([]model.MediaAsset, len(resources))
	for i, r := range resources {
		assets[i] = r.ToAsset()
	}
	return assets, nil
}

// ListResources queries the image and video prefixes concurrently, merges both
// pages, drops duplicate ids and sorts the result by creation time, newest first.
// Either query failing fails the whole call.
func (s *listMediaSrv) ListResources(ctx context.Context) ([]model.RemoteResource, error) {
	start := time.Now()
	defer func() { metrics.ListDuration.Observe(time.Since(start).Seconds()) }()

	var images, videos []model.RemoteResource
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.store.ListByPrefix(gctx, model.ResourceTypeImage, s.opts.ImagesFolder+"/", s.opts.MaxResults)
		if err != nil {
			return fmt.Errorf("listing images: %w", err)
		}
		images = res
		return nil
	})
	g.Go(func() error {
		res, err := s.store.ListByPrefix(gctx, model.ResourceTypeVideo, s.opts.VideosFolder+"/", s.opts.MaxResults)
		if err != nil {
			return fmt.Errorf("listing videos: %w", err)
		}
		videos = res
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "❌ %v", err)
		return nil, err
	}

	merged := make([]model.RemoteResource, 0, len(images)+len(videos))
	seen := make(map[string]struct{}, len(images)+len(videos))
	for _, group := range [...]struct {
		rt  model.ResourceType
		res []model.RemoteResource
	}{{model.ResourceTypeImage, images}, {model.ResourceTypeVideo, videos}} {
		for _, r := range group.res {
			if _, dup := seen[r.PublicID]; dup {
				logger.Warnf(ctx, "duplicate public id %q in listing, keeping the first one", r.PublicID)
				continue
			}
			seen[r.PublicID] = struct{}{}
			if r.ResourceType == "" {
				r.ResourceType = group.rt
			}
			merged = append(merged, r)
		}
	}

	// The remote order of two independent queries says nothing about their interleaving.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}
