package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that enforces a per-request deadline. When the
// handler overruns it, the client gets a 504 Gateway Timeout; the handler's
// context carries the deadline so downstream calls can bail out early.
//
// The handler runs on its own goroutine against a buffering writer, so the
// timeout path and the handler can never interleave writes on the real
// ResponseWriter.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buffered := &timeoutWriter{w: w}
			finished := make(chan struct{})

			go func() {
				next.ServeHTTP(buffered, r.WithContext(ctx))
				close(finished)
			}()

			select {
			case <-finished:
				buffered.mu.Lock()
				defer buffered.mu.Unlock()
				buffered.flush()
			case <-ctx.Done():
				buffered.mu.Lock()
				defer buffered.mu.Unlock()
				if !buffered.wroteHeader {
					w.WriteHeader(http.StatusGatewayTimeout)
				}
			}
		})
	}
}

// timeoutWriter buffers the handler's response until it either completes
// (flush) or loses the race to the deadline (buffer discarded). The mutex is
// shared between the handler goroutine and the timeout select.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	status      int
	wroteHeader bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.wroteHeader {
		tw.status = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader {
		return
	}
	tw.status = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Callers must
// hold tw.mu.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
