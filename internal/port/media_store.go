package port

import (
	"context"
	"fmt"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

// RemoteUploadParams describes one upload call against the remote media store.
type RemoteUploadParams struct {
	Data           []byte
	FileName       string
	MimeType       string
	ResourceType   model.ResourceType
	Folder         string
	Transformation string
}

// DestroyResult is the outcome string reported by the remote store ("ok", "not found", ...).
type DestroyResult string

const (
	DestroyOK       DestroyResult = "ok"
	DestroyNotFound DestroyResult = "not found"
)

// MediaStore is the contract of the external object-storage-with-transformations service.
type MediaStore interface {
	Upload(ctx context.Context, p RemoteUploadParams) (model.UploadResult, error)
	ListByPrefix(ctx context.Context, rt model.ResourceType, prefix string, maxResults int) ([]model.RemoteResource, error)
	Destroy(ctx context.Context, rt model.ResourceType, publicID string) (DestroyResult, error)
	Ping(ctx context.Context) error
	Usage(ctx context.Context) (model.RemoteUsage, error)
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// RemoteError is a failure reported by the remote media store. Kind is one of
// the sentinel errors of the media use cases, so callers can use errors.Is.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Kind       error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: remote store answered %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}
