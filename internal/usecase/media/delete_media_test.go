package media

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/wedding-medias-go/internal/mock"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

func TestDeleteMedia(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		store       *mock.MediaStore
		wantErr     error
		wantDestroy []model.ResourceType
	}{
		{
			name:        "image",
			id:          "casamiento-fotos/a",
			store:       &mock.MediaStore{DestroyOut: map[model.ResourceType]port.DestroyResult{model.ResourceTypeImage: port.DestroyOK}},
			wantDestroy: []model.ResourceType{model.ResourceTypeImage},
		},
		{
			name:        "video after image miss",
			id:          "casamiento-videos/v",
			store:       &mock.MediaStore{DestroyOut: map[model.ResourceType]port.DestroyResult{model.ResourceTypeVideo: port.DestroyOK}},
			wantDestroy: []model.ResourceType{model.ResourceTypeImage, model.ResourceTypeVideo},
		},
		{
			name:        "nonexistent id",
			id:          "casamiento-fotos/ghost",
			store:       &mock.MediaStore{},
			wantErr:     ErrObjectNotFound,
			wantDestroy: []model.ResourceType{model.ResourceTypeImage, model.ResourceTypeVideo},
		},
		{
			name:        "unexpected result",
			id:          "casamiento-fotos/a",
			store:       &mock.MediaStore{DestroyOut: map[model.ResourceType]port.DestroyResult{model.ResourceTypeImage: "error"}},
			wantErr:     ErrRemoteRejected,
			wantDestroy: []model.ResourceType{model.ResourceTypeImage},
		},
		{
			name:        "remote failure",
			id:          "casamiento-fotos/a",
			store:       &mock.MediaStore{DestroyErr: &port.RemoteError{Op: "destroy", StatusCode: 401, Kind: ErrRemoteAuth}},
			wantErr:     ErrRemoteAuth,
			wantDestroy: []model.ResourceType{model.ResourceTypeImage},
		},
		{
			name:    "missing id",
			id:      "",
			store:   &mock.MediaStore{},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMediaDeleter(tt.store)

			err := svc.DeleteMedia(context.Background(), port.DeleteMediaInput{ID: tt.id})
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if len(tt.store.Destroyed) != len(tt.wantDestroy) {
				t.Fatalf("destroy calls = %+v, want types %v", tt.store.Destroyed, tt.wantDestroy)
			}
			for i, rt := range tt.wantDestroy {
				if tt.store.Destroyed[i].ResourceType != rt || tt.store.Destroyed[i].PublicID != tt.id {
					t.Errorf("destroy call %d = %+v", i, tt.store.Destroyed[i])
				}
			}
		})
	}
}
