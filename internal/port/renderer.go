package port

import (
	"context"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

// HTTPRenderer turns use case results into JSON payloads with an ETag.
type HTTPRenderer interface {
	RenderListing(ctx context.Context, lister MediaLister) ([]byte, string, error)
}

// ListingOutput is the body of the photo listing endpoint.
type ListingOutput struct {
	Success bool               `json:"success"`
	Photos  []model.MediaAsset `json:"photos"`
	Total   int                `json:"total"`
}
