// Package httpserver wraps net/http's Server with option-based construction,
// environment-driven configuration and graceful shutdown on context
// cancellation or SIGINT/SIGTERM.
package httpserver
