package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger attaches logger to ctx. Workers started from ctx report
// through it.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// ForFile returns the logger of ctx with the path field set, so parser
// diagnostics name the document they came from.
func ForFile(ctx context.Context, path string) *log.Logger {
	logger := FromContext(ctx)
	if path == "" {
		return logger
	}
	return logger.With(FieldPath, path)
}
