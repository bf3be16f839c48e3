// Package ctxlog threads a slog.Logger through context.Context so the core
// packages can log without holding a logger field.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to avoid collisions with other packages' context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger, falling back to the process default when
// the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
