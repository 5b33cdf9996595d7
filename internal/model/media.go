package model

import (
	"path"
	"strings"
	"time"
)

type ResourceType string

const (
	ResourceTypeImage ResourceType = "image"
	ResourceTypeVideo ResourceType = "video"
)

// MediaAsset is one stored image or video, always derived from the remote store.
type MediaAsset struct {
	ID           string       `json:"id"`
	URL          string       `json:"url"`
	PublicID     string       `json:"publicId"`
	UploadedAt   time.Time    `json:"uploadedAt"`
	FileName     string       `json:"fileName"`
	Size         int64        `json:"size"`
	Format       string       `json:"format"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	ResourceType ResourceType `json:"resourceType"`
	Duration     *float64     `json:"duration"`
}

// RemoteResource is a single entry as returned by the remote store listing.
type RemoteResource struct {
	PublicID         string       `json:"public_id"`
	SecureURL        string       `json:"secure_url"`
	CreatedAt        time.Time    `json:"created_at"`
	ResourceType     ResourceType `json:"resource_type"`
	Format           string       `json:"format"`
	Bytes            int64        `json:"bytes"`
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	Duration         *float64     `json:"duration,omitempty"`
	OriginalFilename string       `json:"original_filename,omitempty"`
}

// ToAsset shapes a remote resource into its display record.
func (r RemoteResource) ToAsset() MediaAsset {
	rt := r.ResourceType
	if rt == "" {
		rt = ResourceTypeImage
	}
	var duration *float64
	if rt == ResourceTypeVideo && r.Duration != nil {
		d := *r.Duration
		duration = &d
	}

	return MediaAsset{
		ID:           r.PublicID,
		URL:          r.SecureURL,
		PublicID:     r.PublicID,
		UploadedAt:   r.CreatedAt,
		FileName:     r.DisplayName(),
		Size:         r.Bytes,
		Format:       r.Format,
		Width:        r.Width,
		Height:       r.Height,
		ResourceType: rt,
		Duration:     duration,
	}
}

// DisplayName is the original file name, or the last segment of the public id.
func (r RemoteResource) DisplayName() string {
	if r.OriginalFilename != "" {
		return r.OriginalFilename
	}
	return LastSegment(r.PublicID)
}

// ArchiveName is the file name used for the resource inside an export archive.
func (r RemoteResource) ArchiveName() string {
	name := r.OriginalFilename
	if name == "" {
		name = LastSegment(r.PublicID)
	}
	if r.Format != "" && !strings.EqualFold(path.Ext(name), "."+r.Format) {
		name += "." + r.Format
	}
	return name
}

// UploadResult is the normalized answer of one successful remote upload.
type UploadResult struct {
	PublicID         string       `json:"public_id"`
	SecureURL        string       `json:"secure_url"`
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	Format           string       `json:"format"`
	Bytes            int64        `json:"bytes"`
	CreatedAt        time.Time    `json:"created_at"`
	ResourceType     ResourceType `json:"resource_type,omitempty"`
	OriginalFilename string       `json:"original_filename,omitempty"`
	Duration         *float64     `json:"duration,omitempty"`
}

func (u UploadResult) ToAsset() MediaAsset {
	return RemoteResource{
		PublicID:         u.PublicID,
		SecureURL:        u.SecureURL,
		CreatedAt:        u.CreatedAt,
		ResourceType:     u.ResourceType,
		Format:           u.Format,
		Bytes:            u.Bytes,
		Width:            u.Width,
		Height:           u.Height,
		Duration:         u.Duration,
		OriginalFilename: u.OriginalFilename,
	}.ToAsset()
}

func LastSegment(publicID string) string {
	if i := strings.LastIndex(publicID, "/"); i >= 0 {
		return publicID[i+1:]
	}
	return publicID
}
