// Package logger builds configured *slog.Logger instances: JSON or text
// output, environment presets, static attributes, and context extractors
// that inject request-scoped values (such as request IDs) into every record
// logged with a context.
package logger
