package mock

import (
	"context"
	"io"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	FilesOut []port.FileInfo

	// captured inputs
	ObjectKey    string
	DownloadName string
	TTL          time.Duration
	Prefix       string
	Saved        []byte
	SavedSize    int64
	SavedOpts    map[string]string

	// errors
	InitBucketErr           error
	GenerateDownloadLinkErr error
	ListErr                 error
	SaveErr                 error

	// call flags
	InitBucketCalled           bool
	GenerateDownloadLinkCalled bool
	ListCalled                 bool
	SaveCalled                 bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(ctx context.Context) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, fileKey, downloadName string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.ObjectKey = fileKey
	m.DownloadName = downloadName
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download/" + fileKey, nil
}

func (m *Storage) ListFiles(ctx context.Context, prefix string) ([]port.FileInfo, error) {
	m.ListCalled = true
	m.Prefix = prefix
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.FilesOut, nil
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.ObjectKey = fileKey
	m.SavedSize = fileSize
	m.SavedOpts = opts
	if m.SaveErr != nil {
		return m.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.Saved = data
	return nil
}
