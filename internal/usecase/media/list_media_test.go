package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/mock"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

var (
	t1 = time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
	t3 = t2.Add(time.Hour)
)

func testListOptions() ListOptions {
	return ListOptions{ImagesFolder: "casamiento-fotos", VideosFolder: "casamiento-videos", MaxResults: 500}
}

func res(id string, created time.Time, rt model.ResourceType) model.RemoteResource {
	return model.RemoteResource{
		PublicID:     id,
		SecureURL:    "https://cdn.example.com/" + id,
		CreatedAt:    created,
		ResourceType: rt,
		Format:       "jpg",
	}
}

func TestListAll_MergesAndSortsDescending(t *testing.T) {
	dur := 12.5
	video := res("casamiento-videos/v1", t2, model.ResourceTypeVideo)
	video.Format = "mp4"
	video.Duration = &dur

	store := &mock.MediaStore{Resources: map[model.ResourceType][]model.RemoteResource{
		model.ResourceTypeImage: {res("casamiento-fotos/a", t1, model.ResourceTypeImage), res("casamiento-fotos/c", t3, model.ResourceTypeImage)},
		model.ResourceTypeVideo: {video},
	}}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}
	wantIDs := []string{"casamiento-fotos/c", "casamiento-videos/v1", "casamiento-fotos/a"}
	for i, id := range wantIDs {
		if assets[i].ID != id {
			t.Errorf("assets[%d].ID = %q, want %q", i, assets[i].ID, id)
		}
	}
	if assets[1].Duration == nil || *assets[1].Duration != dur {
		t.Errorf("video duration not carried over: %v", assets[1].Duration)
	}
	if assets[0].FileName != "c" {
		t.Errorf("FileName fallback = %q, want c", assets[0].FileName)
	}
}

func TestListResources_QueriesBothPrefixes(t *testing.T) {
	store := &mock.MediaStore{}
	svc := NewMediaLister(store, testListOptions())

	if _, err := svc.ListResources(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.ListCalls) != 2 {
		t.Fatalf("expected 2 list calls, got %d", len(store.ListCalls))
	}
	got := map[model.ResourceType]mock.ListCall{}
	for _, c := range store.ListCalls {
		got[c.ResourceType] = c
	}
	if c := got[model.ResourceTypeImage]; c.Prefix != "casamiento-fotos/" || c.MaxResults != 500 {
		t.Errorf("image call = %+v", c)
	}
	if c := got[model.ResourceTypeVideo]; c.Prefix != "casamiento-videos/" || c.MaxResults != 500 {
		t.Errorf("video call = %+v", c)
	}
}

func TestListAll_OneListingFails(t *testing.T) {
	boom := &port.RemoteError{Op: "list", StatusCode: 500, Message: "boom", Kind: ErrRemoteTransient}
	store := &mock.MediaStore{
		Resources: map[model.ResourceType][]model.RemoteResource{
			model.ResourceTypeVideo: {res("casamiento-videos/v1", t2, model.ResourceTypeVideo)},
		},
		ListErr: map[model.ResourceType]error{model.ResourceTypeImage: boom},
	}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if !errors.Is(err, ErrRemoteTransient) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if assets != nil {
		t.Errorf("expected no partial result, got %d assets", len(assets))
	}
}

func TestListAll_EmptyPrefixIsSuccess(t *testing.T) {
	store := &mock.MediaStore{Resources: map[model.ResourceType][]model.RemoteResource{
		model.ResourceTypeImage: {res("casamiento-fotos/a", t1, model.ResourceTypeImage)},
	}}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 1 {
		t.Errorf("expected 1 asset, got %d", len(assets))
	}
}

func TestListAll_DropsDuplicateIDs(t *testing.T) {
	first := res("casamiento-fotos/a", t1, model.ResourceTypeImage)
	dup := res("casamiento-fotos/a", t3, model.ResourceTypeVideo)
	store := &mock.MediaStore{Resources: map[model.ResourceType][]model.RemoteResource{
		model.ResourceTypeImage: {first},
		model.ResourceTypeVideo: {dup},
	}}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	if assets[0].ResourceType != model.ResourceTypeImage {
		t.Errorf("expected first occurrence to win, got %q", assets[0].ResourceType)
	}
}

func TestListAll_StableForEqualTimestamps(t *testing.T) {
	store := &mock.MediaStore{Resources: map[model.ResourceType][]model.RemoteResource{
		model.ResourceTypeImage: {
			res("casamiento-fotos/x", t1, model.ResourceTypeImage),
			res("casamiento-fotos/y", t1, model.ResourceTypeImage),
			res("casamiento-fotos/z", t1, model.ResourceTypeImage),
		},
	}}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, id := range []string{"casamiento-fotos/x", "casamiento-fotos/y", "casamiento-fotos/z"} {
		if assets[i].ID != id {
			t.Errorf("assets[%d] = %q, want %q", i, assets[i].ID, id)
		}
	}
}

func TestListAll_DefaultsResourceTypeFromCollection(t *testing.T) {
	v := res("casamiento-videos/v", t1, "")
	i := res("casamiento-fotos/i", t2, "")
	store := &mock.MediaStore{Resources: map[model.ResourceType][]model.RemoteResource{
		model.ResourceTypeImage: {i},
		model.ResourceTypeVideo: {v},
	}}
	svc := NewMediaLister(store, testListOptions())

	assets, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assets[0].ResourceType != model.ResourceTypeImage || assets[1].ResourceType != model.ResourceTypeVideo {
		t.Errorf("unexpected resource types %q, %q", assets[0].ResourceType, assets[1].ResourceType)
	}
}
