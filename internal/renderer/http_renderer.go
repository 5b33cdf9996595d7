package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type httpRenderer struct{}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new port.HTTPRenderer implementation.
func NewHTTPRenderer() port.HTTPRenderer {
	return &httpRenderer{}
}

// RenderListing always asks the lister since the remote store is the only
// source of truth. It returns the JSON encoded listing and a quoted ETag
// computed over it.
func (r *httpRenderer) RenderListing(ctx context.Context, lister port.MediaLister) ([]byte, string, error) {
	assets, err := lister.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	if assets == nil {
		assets = []model.MediaAsset{}
	}

	raw, err := json.Marshal(port.ListingOutput{Success: true, Photos: assets, Total: len(assets)})
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	return raw, ETag(raw), nil
}

// ETag returns the quoted CRC32 of raw.
func ETag(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}
