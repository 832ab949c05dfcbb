package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes atomically. KEYS[1] is the bucket
// hash; ARGV: capacity, refill rate, refill interval (ms), tokens requested,
// now (ms). Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])
local now = tonumber(ARGV[5])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'last_refill')
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil then
  tokens = capacity
  last = now
end

local intervals = math.floor((now - last) / interval)
if intervals > 0 then
  tokens = math.min(capacity, tokens + intervals * rate)
  last = last + intervals * interval
end

local allowed = 0
local retry_after = 0
if tokens >= requested then
  tokens = tokens - requested
  allowed = 1
else
  local deficit = requested - tokens
  local needed = math.ceil(deficit / rate)
  retry_after = needed * interval - (now - last)
end

redis.call('HSET', KEYS[1], 'tokens', tokens, 'last_refill', last)
local ttl = math.ceil(capacity / rate) * interval
redis.call('PEXPIRE', KEYS[1], ttl)

return {allowed, tokens, retry_after}
`)

// RedisStore shares bucket state across instances via a Lua script, so the
// refill-and-consume step stays atomic under concurrent callers.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore returns a store using client. Keys are namespaced with
// prefix; pass "" for the default "ratelimit".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Consume(ctx context.Context, key string, n int64, cfg Config) (Result, error) {
	vals, err := tokenBucketScript.Run(ctx, s.client,
		[]string{s.prefix + ":" + key},
		cfg.Capacity,
		cfg.RefillRate,
		cfg.RefillInterval.Milliseconds(),
		n,
		time.Now().UnixMilli(),
	).Int64Slice()
	if err != nil {
		return Result{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(vals) != 3 {
		return Result{}, errors.Join(ErrStoreUnavailable, errors.New("unexpected script reply"))
	}

	return Result{
		Allowed:    vals[0] == 1,
		Remaining:  vals[1],
		Limit:      cfg.Capacity,
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}
