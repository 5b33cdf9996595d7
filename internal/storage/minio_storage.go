package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type MinioStorage struct {
	client     minioClient
	bucketName string
}

type Strg struct {
	Client minioClient
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*Strg, error) {
	logger.Info(context.Background(), "initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, wrapS3("connect", endpoint, err)
	}
	return &Strg{Client: client}, nil
}

func (c *Strg) WithBucket(bucket string) *MinioStorage {
	return &MinioStorage{client: c.Client, bucketName: bucket}
}

// InitBucket creates the bucket when it does not exist yet.
func (s *MinioStorage) InitBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return wrapS3("stat bucket", s.bucketName, err)
	}
	if !ok {
		logger.Infof(ctx, "bucket %q does not exist, creating it...", s.bucketName)
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return wrapS3("create bucket", s.bucketName, err)
		}
	}
	return nil
}

func (s *MinioStorage) GeneratePresignedDownloadURL(ctx context.Context, fileKey, downloadName string, expiry time.Duration) (string, error) {
	logger.Debugf(ctx, "generating a presigned download link for file %q in bucket %q...", fileKey, s.bucketName)

	if downloadName == "" {
		downloadName = path.Base(fileKey)
	}
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName))

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, fileKey, expiry, params)
	if err != nil {
		return "", wrapS3("presign", fileKey, err)
	}

	return presignedURL.String(), nil
}

func (s *MinioStorage) ListFiles(ctx context.Context, prefix string) ([]port.FileInfo, error) {
	logger.Debugf(ctx, "listing files with prefix %q in bucket %q...", prefix, s.bucketName)

	var files []port.FileInfo
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, wrapS3("list", prefix, obj.Err)
		}
		files = append(files, port.FileInfo{
			Key:          obj.Key,
			SizeBytes:    obj.Size,
			ContentType:  obj.ContentType,
			LastModified: obj.LastModified,
		})
	}
	return files, nil
}

// SaveFile uploads the reader. "Content-Type" in opts sets the object type,
// every other entry is stored as user metadata.
func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	logger.Infof(ctx, "saving file %q into bucket %q...", fileKey, s.bucketName)

	putOpts := minio.PutObjectOptions{}
	for k, v := range opts {
		if strings.EqualFold(k, "Content-Type") {
			putOpts.ContentType = v
			continue
		}
		if putOpts.UserMetadata == nil {
			putOpts.UserMetadata = map[string]string{}
		}
		putOpts.UserMetadata[k] = v
	}

	_, err := s.client.PutObject(ctx, s.bucketName, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return wrapS3("put", fileKey, err)
	}
	return nil
}
