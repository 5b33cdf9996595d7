package port

import (
	"context"
	"time"
)

// ConfigStatus is the outcome of a connectivity check against the remote store.
type ConfigStatus struct {
	OK        bool      `json:"ok"`
	Message   string    `json:"message,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Cache keeps short-lived results that would otherwise cost a rate-limited remote call.
type Cache interface {
	GetConfigStatus(ctx context.Context) (*ConfigStatus, error)
	SetConfigStatus(ctx context.Context, st *ConfigStatus, ttl time.Duration)
	DeleteConfigStatus(ctx context.Context) error
}
