package logging

import (
	"context"
)

type contextKey string

const (
	loggerKey  contextKey = "logger"
	queryIDKey contextKey = "query_id"
	sourceKey  contextKey = "source"
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, falls back to global
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(loggerKey).(*Logger); ok {
		return logger
	}
	return global
}

// WithQueryID tags the context with the id of the data set being read
func WithQueryID(ctx context.Context, queryID string) context.Context {
	return context.WithValue(ctx, queryIDKey, queryID)
}

// WithSource tags the context with the file or input being read
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

func extractContextFields(ctx context.Context) []interface{} {
	var fields []interface{}

	if queryID, ok := ctx.Value(queryIDKey).(string); ok && queryID != "" {
		fields = append(fields, "query_id", queryID)
	}

	if source, ok := ctx.Value(sourceKey).(string); ok && source != "" {
		fields = append(fields, "source", source)
	}

	return fields
}
