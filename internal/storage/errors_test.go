package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func TestWrapS3(t *testing.T) {
	tests := []struct {
		name       string
		op, key    string
		err        error
		want       error
		wantPrefix string
	}{
		{"missing object", "put", "snapshots/a.zip", minio.ErrorResponse{Code: "NoSuchKey"}, media.ErrObjectNotFound, `put "snapshots/a.zip": `},
		{"missing bucket", "list", "", minio.ErrorResponse{Code: "NoSuchBucket"}, media.ErrBucketNotFound, "list: "},
		{"bad signature", "presign", "x", minio.ErrorResponse{Code: "SignatureDoesNotMatch"}, media.ErrUnauthorized, `presign "x": `},
		{"denied", "create bucket", "wedding", minio.ErrorResponse{Code: "AccessDenied"}, media.ErrUnauthorized, `create bucket "wedding": `},
		{"anything else", "stat bucket", "wedding", errors.New("dial tcp: refused"), media.ErrInternal, `stat bucket "wedding": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapS3(tt.op, tt.key, tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("wrapS3() = %v; want %v", got, tt.want)
			}
			if !strings.HasPrefix(got.Error(), tt.wantPrefix) {
				t.Errorf("wrapS3() = %q; want prefix %q", got, tt.wantPrefix)
			}
		})
	}

	if err := wrapS3("put", "k", nil); err != nil {
		t.Errorf("wrapS3(nil) = %v; want nil", err)
	}
}

func TestWrapS3_KeepsUnknownCause(t *testing.T) {
	err := wrapS3("put", "k", errors.New("disk full"))
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause lost: %v", err)
	}
}
