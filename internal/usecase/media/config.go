package media

import (
	"fmt"
	"strings"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

const (
	imageTransformation = "q_auto,f_auto"
	videoTransformation = "q_auto"
)

// Limits holds the per-kind upload settings.
type Limits struct {
	MaxImageSize int64
	MaxVideoSize int64
	ImagesFolder string
	VideosFolder string
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "image/")
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "video/")
}

// ResourceTypeFor maps a MIME type to the remote resource type.
func ResourceTypeFor(mimeType string) (model.ResourceType, error) {
	switch {
	case IsImage(mimeType):
		return model.ResourceTypeImage, nil
	case IsVideo(mimeType):
		return model.ResourceTypeVideo, nil
	}
	return "", fmt.Errorf("%w: unsupported media type %q", ErrInvalidInput, mimeType)
}

func (l Limits) MaxSizeFor(rt model.ResourceType) int64 {
	if rt == model.ResourceTypeVideo {
		return l.MaxVideoSize
	}
	return l.MaxImageSize
}

func (l Limits) FolderFor(rt model.ResourceType) string {
	if rt == model.ResourceTypeVideo {
		return l.VideosFolder
	}
	return l.ImagesFolder
}

func TransformationFor(rt model.ResourceType) string {
	if rt == model.ResourceTypeVideo {
		return videoTransformation
	}
	return imageTransformation
}
