package ratelimiter

import "context"

// Bucket is a token bucket limiter bound to a store and config.
type Bucket struct {
	store Store
	cfg   Config
}

// NewBucket validates cfg and returns a limiter backed by store.
func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if store == nil {
		return nil, ErrInvalidConfig
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int64) (Result, error) {
	if n <= 0 {
		n = 1
	}
	return b.store.Consume(ctx, key, n, b.cfg)
}
