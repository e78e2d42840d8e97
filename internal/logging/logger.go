// Package logging defines the minimal structured-logging interface used across
// the project. The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "upload complete", "bucket", bucket, "key", key)
package logging

import "context"

// Logger is a context-aware, structured logger.
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
