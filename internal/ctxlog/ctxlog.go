// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs through the logger configured at startup without threading it
// explicitly.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this package's context entries private.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// From extracts the logger from ctx, falling back to slog.Default when the
// context carries none. Library code can always log without checking.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger has the given attributes appended.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, From(ctx).With(args...))
}
