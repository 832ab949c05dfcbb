// Package redis provides a configured go-redis client with connection
// retries and a health check helper.
package redis
