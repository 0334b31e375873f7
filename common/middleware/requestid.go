package middleware

import (
	"net/http"

	"mergington-hub/common/ctxdata"

	"github.com/google/uuid"
)

// RequestIDMiddleware assigns each request a unique ID for log correlation.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates the request-ID middleware.
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle injects request and trace IDs into the context and response headers.
func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Prefer an upstream-supplied ID.
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = requestID
		}

		ctx := r.Context()
		ctx = ctxdata.WithRequestID(ctx, requestID)
		ctx = ctxdata.WithTraceID(ctx, traceID)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
