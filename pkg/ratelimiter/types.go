package ratelimiter

import (
	"context"
	"time"
)

// Config describes a token bucket: Capacity tokens maximum, refilled at
// RefillRate tokens per RefillInterval.
type Config struct {
	Capacity       int64
	RefillRate     int64
	RefillInterval time.Duration
}

func (c Config) validate() error {
	if c.Capacity <= 0 || c.RefillRate <= 0 || c.RefillInterval <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Result reports the outcome of a consume attempt.
type Result struct {
	Allowed    bool
	Remaining  int64
	Limit      int64
	RetryAfter time.Duration
}

// Store persists bucket state. Implementations must be safe for concurrent
// use and must apply the refill-then-consume step atomically per key.
type Store interface {
	// Consume takes n tokens from the bucket identified by key, refilling
	// it first according to cfg and elapsed time.
	Consume(ctx context.Context, key string, n int64, cfg Config) (Result, error)
}
