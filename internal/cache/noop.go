package cache

import (
	"context"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetConfigStatus(ctx context.Context) (*port.ConfigStatus, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetConfigStatus(ctx context.Context, st *port.ConfigStatus, ttl time.Duration) {
}

func (n *NoopCache) DeleteConfigStatus(ctx context.Context) error { return nil }
