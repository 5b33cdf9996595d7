package media

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
)

// RetryPolicy drives the exponential backoff around remote uploads.
// After failed attempt n (1-based) the caller waits 2^n * BaseDelay.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// newTimer is replaced in tests; nil uses the backoff package timer.
	newTimer func() backoff.Timer
}

func NewRetryPolicy(maxAttempts int, base time.Duration) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return RetryPolicy{MaxAttempts: maxAttempts, BaseDelay: base}
}

// Delay returns the wait applied after failed attempt n.
func (p RetryPolicy) Delay(n int) time.Duration {
	return time.Duration(1<<uint(n)) * p.BaseDelay
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.Delay(1)
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = p.Delay(p.MaxAttempts)
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(p.MaxAttempts-1)), ctx)
}

// Do runs fn until it succeeds, the attempts are exhausted, the context ends
// or fn returns an authentication error. The last error from fn is returned unchanged.
func (p RetryPolicy) Do(ctx context.Context, fn func(attempt int) error) error {
	var (
		attempt int
		lastErr error
	)
	op := func() error {
		attempt++
		lastErr = fn(attempt)
		if lastErr != nil && isTerminal(lastErr) {
			return backoff.Permanent(lastErr)
		}
		return lastErr
	}
	notify := func(err error, wait time.Duration) {
		logger.Warnf(ctx, "attempt %d/%d failed, retrying in %s: %v", attempt, p.MaxAttempts, wait, err)
	}

	var timer backoff.Timer
	if p.newTimer != nil {
		timer = p.newTimer()
	}

	err := backoff.RetryNotifyWithTimer(op, p.backOff(ctx), notify, timer)
	if err != nil && lastErr != nil && isContextErr(err) {
		// the context ended while waiting; report what the remote said
		return lastErr
	}
	return err
}

func isTerminal(err error) bool {
	return errors.Is(err, ErrRemoteAuth) || isContextErr(err)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
