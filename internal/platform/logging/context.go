package logging

import "context"

type contextKey string

const loggerContextKey contextKey = "logger"

// FromContext extracts the Logger carried on ctx, falling back to a
// no-op logger when none was attached.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok && logger != nil {
		return logger
	}

	return &NoneLogger{}
}

// ContextWith returns a derived context carrying logger.
func ContextWith(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}
