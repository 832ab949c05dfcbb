package redis

import "errors"

var (
	// ErrInvalidURL means the connection URL could not be parsed.
	ErrInvalidURL = errors.New("redis: invalid connection URL")

	// ErrConnectionFailed means the server did not answer PING within the
	// configured retry budget.
	ErrConnectionFailed = errors.New("redis: connection failed")

	// ErrHealthcheckFailed means an established client stopped responding.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
