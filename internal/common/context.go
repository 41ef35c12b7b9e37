package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyElevated  contextKey = "elevated"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithUserID adds the acting user to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// UserIDFromContext extracts the acting user from context
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return userID
	}
	return ""
}

// WithElevated marks the context as carrying elevated privilege. The engine
// honors a model override only when this is set.
func WithElevated(ctx context.Context, elevated bool) context.Context {
	return context.WithValue(ctx, ContextKeyElevated, elevated)
}

// ElevatedFromContext reports whether the caller holds elevated privilege.
func ElevatedFromContext(ctx context.Context) bool {
	if elevated, ok := ctx.Value(ContextKeyElevated).(bool); ok {
		return elevated
	}
	return false
}
