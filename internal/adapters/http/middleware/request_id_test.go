package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/mwhitaker/statekit/internal/adapters/http/middleware"
)

var reUUIDv4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func captureRequestID(t *testing.T) (http.Handler, *string) {
	t.Helper()

	var id string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		id = middleware.RequestIDFromContext(r.Context())
	}))
	return h, &id
}

func TestRequestID_GeneratesUUIDWhenHeaderMissing(t *testing.T) {
	t.Parallel()

	handler, gotID := captureRequestID(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	if *gotID == "" {
		t.Fatal("RequestIDFromContext returned empty string, want generated ID")
	}
	if !reUUIDv4.MatchString(*gotID) {
		t.Errorf("generated ID %q is not a UUID v4", *gotID)
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != *gotID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, *gotID)
	}
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()

	handler, gotID := captureRequestID(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "incoming-123")
	handler.ServeHTTP(rec, req)

	if *gotID != "incoming-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", *gotID, "incoming-123")
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != "incoming-123" {
		t.Errorf("response X-Request-ID = %q, want %q", respID, "incoming-123")
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	}

	if len(seen) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(seen))
	}
}

func TestRequestIDFromContext_EmptyWhenUnset(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
}

func TestWithRequestID_RoundTrips(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "test-id")
	if got := middleware.RequestIDFromContext(ctx); got != "test-id" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "test-id")
	}
}
