package mock

import (
	"context"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	StatusOut *port.ConfigStatus

	// captured inputs
	SetStatus *port.ConfigStatus
	SetTTL    time.Duration

	// errors
	GetErr error
	DelErr error

	// call flags
	GetCalled bool
	SetCalled bool
	DelCalled bool
}

var _ port.Cache = (*Cache)(nil)

func (c *Cache) GetConfigStatus(ctx context.Context) (*port.ConfigStatus, error) {
	c.GetCalled = true
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.StatusOut, nil
}

func (c *Cache) SetConfigStatus(ctx context.Context, st *port.ConfigStatus, ttl time.Duration) {
	c.SetCalled = true
	c.SetStatus = st
	c.SetTTL = ttl
}

func (c *Cache) DeleteConfigStatus(ctx context.Context) error {
	c.DelCalled = true
	return c.DelErr
}
