package media

import (
	"context"
	"fmt"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/validation"
)

type deleteMediaSrv struct {
	store port.MediaStore
}

var _ port.MediaDeleter = (*deleteMediaSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(store port.MediaStore) port.MediaDeleter {
	return &deleteMediaSrv{store: store}
}

// DeleteMedia destroys the asset. The public id does not say whether it is an
// image or a video, so the image collection is tried first.
func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) error {
	if err := validation.ValidateStruct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var last port.DestroyResult
	for _, rt := range []model.ResourceType{model.ResourceTypeImage, model.ResourceTypeVideo} {
		res, err := s.store.Destroy(ctx, rt, in.ID)
		if err != nil {
			return err
		}
		if res == port.DestroyOK {
			logger.Infof(ctx, "🗑️ deleted %s %q", rt, in.ID)
			return nil
		}
		last = res
		if res != port.DestroyNotFound {
			break
		}
	}

	if last == port.DestroyNotFound {
		return fmt.Errorf("%w: %q", ErrObjectNotFound, in.ID)
	}
	return fmt.Errorf("%w: destroy of %q answered %q", ErrRemoteRejected, in.ID, last)
}
