package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type memoryBucket struct {
	tokens     int64
	lastRefill time.Time
}

// MemoryStore keeps bucket state in process memory. Suitable for a single
// instance or for tests.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*memoryBucket
	now     func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*memoryBucket),
		now:     time.Now,
	}
}

func (s *MemoryStore) Consume(_ context.Context, key string, n int64, cfg Config) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &memoryBucket{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill)
	if intervals := int64(elapsed / cfg.RefillInterval); intervals > 0 {
		b.tokens = min(cfg.Capacity, b.tokens+intervals*cfg.RefillRate)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
	}

	res := Result{Limit: cfg.Capacity}
	if b.tokens >= n {
		b.tokens -= n
		res.Allowed = true
		res.Remaining = b.tokens
		return res, nil
	}

	res.Remaining = b.tokens
	deficit := n - b.tokens
	intervalsNeeded := (deficit + cfg.RefillRate - 1) / cfg.RefillRate
	res.RetryAfter = time.Duration(intervalsNeeded)*cfg.RefillInterval - now.Sub(b.lastRefill)
	return res, nil
}
