package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwhitaker/statekit/internal/adapters/http/middleware"
)

func serveWithTimeout(t *testing.T, d time.Duration, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	middleware.Timeout(d)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	return rec
}

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	t.Parallel()

	rec := serveWithTimeout(t, 1*time.Second, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
	if rec.Header().Get("X-Custom") != "value" {
		t.Errorf("X-Custom header = %q, want %q", rec.Header().Get("X-Custom"), "value")
	}
}

func TestTimeout_SlowHandlerGets504(t *testing.T) {
	t.Parallel()

	rec := serveWithTimeout(t, 50*time.Millisecond, func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusGatewayTimeout)
	}
}

func TestTimeout_ContextCarriesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	serveWithTimeout(t, 1*time.Second, func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	if !hasDeadline {
		t.Error("request context has no deadline")
	}
}

func TestTimeout_ImplicitWriteDefaultsTo200(t *testing.T) {
	t.Parallel()

	rec := serveWithTimeout(t, 1*time.Second, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("no explicit status"))
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "no explicit status" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "no explicit status")
	}
}
