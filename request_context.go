package restify

import (
	"context"
	"strings"
)

type requestContextKey string

const (
	ctxKeyRequestID   requestContextKey = "restify.request_id"
	ctxKeyCorrelation requestContextKey = "restify.correlation_id"
)

// ContextWithRequestID stores the current request identifier on the context.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || strings.TrimSpace(requestID) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyRequestID, strings.TrimSpace(requestID))
}

// RequestIDFromContext returns the request identifier stored in the context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return strings.TrimSpace(requestID)
	}
	return ""
}

// ContextWithCorrelationID stores the correlation ID on the context.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if ctx == nil || strings.TrimSpace(correlationID) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyCorrelation, strings.TrimSpace(correlationID))
}

// CorrelationIDFromContext extracts the stored correlation ID.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(ctxKeyCorrelation).(string); ok {
		return strings.TrimSpace(correlationID)
	}
	return ""
}
