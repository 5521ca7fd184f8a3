// Package trace provides run correlation identifiers and their context
// threading. A correlation ID is generated once per run and attached to
// every outbound request so logs and crash captures can be matched up later.
package trace

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is the type for context keys to avoid collisions
type contextKey string

const (
	// correlationIDKey is the context key for correlation ID values
	correlationIDKey contextKey = "correlation_id"
	// HeaderCorrelationID is the header name used to tag outbound requests
	HeaderCorrelationID = "X-Demo-Correlation-Id"
	// correlationIDLength is the number of UUID characters kept
	correlationIDLength = 8
)

// NewCorrelationID returns a short opaque identifier for tagging a run's
// outbound requests: the first 8 characters of a freshly generated UUID.
func NewCorrelationID() string {
	return uuid.New().String()[:correlationIDLength]
}

// WithCorrelationID adds a correlation ID to the context
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// IDFromContext returns a correlation ID from context if present
func IDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(correlationIDKey).(string); ok && id != "" {
		return id, true
	}
	return "", false
}

// EnsureID returns an existing correlation ID from context or generates a new one
func EnsureID(ctx context.Context) string {
	if id, ok := IDFromContext(ctx); ok {
		return id
	}
	return NewCorrelationID()
}
