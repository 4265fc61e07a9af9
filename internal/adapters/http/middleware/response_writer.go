// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The chain used by the server, outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout
//
// Each middleware is a func(http.Handler) http.Handler composable with Chain.
package middleware

import "net/http"

// responseWriter wraps http.ResponseWriter so the recovery, otel, and logging
// middleware can see the status code and byte count after the handler ran.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytesOut    int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		status:     http.StatusOK,
	}
}

// WriteHeader records the first status code written; later calls are dropped.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.status = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

// Write counts bytes and marks the implicit 200 OK on a bare Write.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesOut += int64(n)
	return n, err
}

// Unwrap exposes the underlying writer for http.ResponseController and
// interface assertions such as http.Flusher.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
