package mock

import (
	"context"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// MockHTTPRenderer implements port.HTTPRenderer for tests.
type MockHTTPRenderer struct {
	Raw    []byte
	ETag   string
	Err    error
	Called bool
}

func (m *MockHTTPRenderer) RenderListing(ctx context.Context, lister port.MediaLister) ([]byte, string, error) {
	m.Called = true
	return m.Raw, m.ETag, m.Err
}
