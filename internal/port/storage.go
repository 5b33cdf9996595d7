package port

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	Key          string
	SizeBytes    int64
	ContentType  string
	LastModified time.Time
}

// Storage defines the archive storage operations used for snapshots.
type Storage interface {
	InitBucket(ctx context.Context) error
	GeneratePresignedDownloadURL(ctx context.Context, fileKey, downloadName string, expiry time.Duration) (string, error)
	ListFiles(ctx context.Context, prefix string) ([]FileInfo, error)
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
}
