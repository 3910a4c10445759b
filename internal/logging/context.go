package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// correlationIDKey carries the per-invocation correlation id.
const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the given correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFrom extracts the correlation id from the context, or ""
// if none has been set.
func CorrelationIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// EnsureCorrelationID returns a context that is guaranteed to carry a
// correlation id, generating a new one when absent.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if CorrelationIDFrom(ctx) != "" {
		return ctx
	}
	return WithCorrelationID(ctx, uuid.NewString())
}
