package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mwhitaker/statekit/internal/platform/logging"
)

// Logging emits a start and a completion log line per request. A child logger
// carrying the request and correlation IDs is placed in the context through
// logging.WithLogger, so everything downstream logs with those fields
// attached. Header contents are logged at debug level only, after redaction.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			logRequestHeaders(ctx, child, r)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// logRequestHeaders dumps the redacted header set at debug level.
func logRequestHeaders(ctx context.Context, logger *slog.Logger, r *http.Request) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := RedactHeaders(r.Header)
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	logger.DebugContext(ctx, "request headers", args...)
}
