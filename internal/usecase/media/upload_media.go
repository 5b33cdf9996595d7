package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/metrics"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/validation"
)

type uploadMediaSrv struct {
	store  port.MediaStore
	limits Limits
	retry  RetryPolicy
}

var _ port.Uploader = (*uploadMediaSrv)(nil)

func NewMediaUploader(store port.MediaStore, limits Limits, retry RetryPolicy) port.Uploader {
	return &uploadMediaSrv{store: store, limits: limits, retry: retry}
}

// Upload validates the file and pushes it to the remote store, retrying failed
// attempts with exponential backoff. Validation failures never reach the network.
func (s *uploadMediaSrv) Upload(ctx context.Context, in port.UploadMediaInput) (*model.MediaAsset, error) {
	if len(in.Data) > 0 && needsSniffing(in.MimeType) {
		in.MimeType = sniffMimeType(in.Data)
	}
	if err := validation.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rt, err := ResourceTypeFor(in.MimeType)
	if err != nil {
		return nil, err
	}
	if limit := s.limits.MaxSizeFor(rt); limit > 0 && int64(len(in.Data)) > limit {
		return nil, fmt.Errorf("%w: file is %d bytes, the %s limit is %d bytes", ErrInvalidInput, len(in.Data), rt, limit)
	}

	folder := strings.Trim(in.Folder, "/")
	if folder == "" {
		folder = s.limits.FolderFor(rt)
	}
	params := port.RemoteUploadParams{
		Data:           in.Data,
		FileName:       in.FileName,
		MimeType:       in.MimeType,
		ResourceType:   rt,
		Folder:         folder,
		Transformation: TransformationFor(rt),
	}

	var (
		res      model.UploadResult
		attempts int
	)
	err = s.retry.Do(ctx, func(attempt int) error {
		attempts = attempt
		r, err := s.store.Upload(ctx, params)
		if err != nil {
			metrics.UploadAttempts.WithLabelValues(string(rt), "failure").Inc()
			return err
		}
		metrics.UploadAttempts.WithLabelValues(string(rt), "success").Inc()
		res = r
		return nil
	})
	if err != nil {
		if attempts == s.retry.MaxAttempts && !isTerminal(err) {
			metrics.UploadsExhausted.Inc()
		}
		logger.Errorf(ctx, "❌ upload of %q to %q failed: %v", in.FileName, folder, err)
		return nil, err
	}

	if res.ResourceType == "" {
		res.ResourceType = rt
	}
	if res.OriginalFilename == "" {
		res.OriginalFilename = in.FileName
	}
	asset := res.ToAsset()
	logger.Infof(ctx, "✅ uploaded %s %q as %s", rt, in.FileName, asset.PublicID)
	return &asset, nil
}

func needsSniffing(mimeType string) bool {
	mt := strings.TrimSpace(strings.ToLower(mimeType))
	return mt == "" || mt == "application/octet-stream"
}

func sniffMimeType(data []byte) string {
	mt, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(mt)
}
