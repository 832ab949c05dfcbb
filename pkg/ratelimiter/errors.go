package ratelimiter

import "errors"

var (
	// ErrInvalidConfig means the limiter was built with a non-positive
	// capacity or refill setting.
	ErrInvalidConfig = errors.New("ratelimiter: invalid config")

	// ErrStoreUnavailable wraps storage backend failures. Callers decide
	// whether to fail open or closed.
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)
