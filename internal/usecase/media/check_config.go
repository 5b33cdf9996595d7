package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type checkConfigSrv struct {
	store port.MediaStore
	cache port.Cache
	ttl   time.Duration
}

var _ port.ConfigChecker = (*checkConfigSrv)(nil)

func NewConfigChecker(store port.MediaStore, cache port.Cache, ttl time.Duration) port.ConfigChecker {
	return &checkConfigSrv{store: store, cache: cache, ttl: ttl}
}

// CheckConfig pings the remote store with the configured credentials.
// A successful ping is cached so uploads do not pay for one each time.
func (s *checkConfigSrv) CheckConfig(ctx context.Context) error {
	if st, err := s.cache.GetConfigStatus(ctx); err == nil && st != nil && st.OK {
		return nil
	}

	if err := s.store.Ping(ctx); err != nil {
		msg := describeConfigErr(err)
		logger.Errorf(ctx, "❌ remote store configuration check failed: %s", msg)
		if delErr := s.cache.DeleteConfigStatus(ctx); delErr != nil {
			logger.Warnf(ctx, "failed to clear cached configuration status: %v", delErr)
		}
		return fmt.Errorf("%w: %s", ErrConfiguration, msg)
	}

	s.cache.SetConfigStatus(ctx, &port.ConfigStatus{OK: true, CheckedAt: time.Now().UTC()}, s.ttl)
	return nil
}

func describeConfigErr(err error) string {
	var re *port.RemoteError
	if errors.As(err, &re) {
		switch re.StatusCode {
		case 401:
			return "invalid credentials"
		case 403:
			return "access denied"
		}
		if re.Message != "" {
			return re.Message
		}
	}
	return err.Error()
}
