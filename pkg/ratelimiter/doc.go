// Package ratelimiter implements token bucket rate limiting with pluggable
// storage. The in-memory store suits a single instance; the Redis store
// shares buckets across replicas. An HTTP middleware keyed by client IP is
// included.
package ratelimiter
