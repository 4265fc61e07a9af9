package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mwhitaker/statekit/internal/platform/httpclient"
)

const headerRequestID = "X-Request-ID"

// requestIDKey keys request IDs in this package's context values. It is
// deliberately distinct from httpclient's key: each package reads only its
// own key, so neither depends on the other's internals.
type requestIDKey struct{}

// WithRequestID stores the request ID in ctx, both under this package's key
// and via httpclient.WithRequestID so outbound calls propagate the
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext returns the request ID stored in ctx, or "" when none
// is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID assigns every request an X-Request-ID: the incoming header value
// when the client sent one, otherwise a fresh UUID v4. The ID goes into the
// request context and is echoed as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
