// Package retry wraps a fallible operation with bounded exponential
// backoff.
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// Config bounds the retry loop. Delay for attempt n (1-based) is
// min(BaseDelay * 2^(n-1), MaxDelay).
type Config struct {
	MaxAttempts uint
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultConfig returns the production retry bounds: 3 attempts with
// 1s, 2s delays between them, capped at 10s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   1 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Do invokes op until it succeeds or MaxAttempts is exhausted, sleeping
// with exponential backoff between attempts. The final attempt's error
// is propagated unchanged.
func Do[T any](ctx context.Context, cfg Config, logger *zap.Logger, op func() (T, error)) (T, error) {
	attempt := 0
	return retrygo.DoWithData(
		func() (T, error) {
			attempt++
			return op()
		},
		retrygo.Context(ctx),
		retrygo.Attempts(cfg.MaxAttempts),
		retrygo.Delay(cfg.BaseDelay),
		retrygo.MaxDelay(cfg.MaxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(true),
		retrygo.OnRetry(func(n uint, err error) {
			logger.Warn("attempt failed, retrying",
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	)
}
