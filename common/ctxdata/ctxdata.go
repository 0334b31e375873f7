package ctxdata

import "context"

// contextKey is a private key type to avoid collisions.
type contextKey string

const (
	// CtxKeyRequestID is the per-request ID key.
	CtxKeyRequestID contextKey = "requestId"
	// CtxKeyTraceID is the trace ID key.
	CtxKeyTraceID contextKey = "traceId"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, requestID)
}

// WithTraceID stores the trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, CtxKeyTraceID, traceID)
}

// GetRequestIDFromCtx returns the request ID, or "" when absent.
func GetRequestIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyRequestID); val != nil {
		if reqID, ok := val.(string); ok {
			return reqID
		}
	}
	return ""
}

// GetTraceIDFromCtx returns the trace ID, or "" when absent.
func GetTraceIDFromCtx(ctx context.Context) string {
	if val := ctx.Value(CtxKeyTraceID); val != nil {
		if traceID, ok := val.(string); ok {
			return traceID
		}
	}
	return ""
}
