package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

// s3Sentinels maps S3 error codes onto the domain errors callers branch on.
var s3Sentinels = map[string]error{
	"NoSuchKey":             media.ErrObjectNotFound,
	"NoSuchBucket":          media.ErrBucketNotFound,
	"AccessDenied":          media.ErrUnauthorized,
	"InvalidAccessKeyId":    media.ErrUnauthorized,
	"SignatureDoesNotMatch": media.ErrUnauthorized,
}

// wrapS3 classifies err and prefixes it with the failed operation and object
// key. Unknown codes become media.ErrInternal with the S3 message kept.
func wrapS3(op, key string, err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	target := op
	if key != "" {
		target = fmt.Sprintf("%s %q", op, key)
	}
	if sentinel, ok := s3Sentinels[resp.Code]; ok {
		return fmt.Errorf("%s: %w", target, sentinel)
	}
	return fmt.Errorf("%s: %w: %v", target, media.ErrInternal, err)
}
