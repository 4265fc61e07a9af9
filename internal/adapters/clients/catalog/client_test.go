package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/platform/config"
	"github.com/mwhitaker/statekit/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.Default()

	return httpclient.New(cfg, "catalog-api-test", nil, logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestClient_ListArticles(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/posts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"posts": []map[string]any{{
				"id": 1, "headline": "Go 1.25 released", "content": "Highlights...",
				"writer_id":  9,
				"updated_at": "2026-08-01T00:00:00Z",
			}},
			"count": 1,
		})
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	articles, err := client.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("len(articles) = %d, want 1", len(articles))
	}
	if articles[0].Title != "Go 1.25 released" {
		t.Errorf("Title = %q, want the translated headline", articles[0].Title)
	}
	if articles[0].AuthorID != 9 {
		t.Errorf("AuthorID = %d, want the translated writer_id", articles[0].AuthorID)
	}
}

func TestClient_GetArticle(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/posts/42" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"id": 42, "headline": "Title", "content": "Body",
			"writer_id":  9,
			"updated_at": "2026-08-01T00:00:00Z",
		})
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	article, err := client.GetArticle(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}
	if article.ID != 42 {
		t.Errorf("ID = %d, want 42", article.ID)
	}
	wantTime := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !article.UpdatedAt.Equal(wantTime) {
		t.Errorf("UpdatedAt = %v, want %v", article.UpdatedAt, wantTime)
	}
}

func TestClient_GetArticle_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		writeJSON(t, w, map[string]any{"detail": "post 99 not found"})
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.GetArticle(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetArticle() error = %v, want ErrNotFound", err)
	}
}

func TestClient_GetAuthor(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/writers/9" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{"id": 9, "display_name": "Robin"})
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	author, err := client.GetAuthor(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetAuthor() error = %v", err)
	}
	if author.Name != "Robin" {
		t.Errorf("Name = %q, want the translated display_name", author.Name)
	}
}

func TestClient_ServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.ListArticles(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("ListArticles() error = %v, want ErrUnavailable", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer ts.Close()

	client := NewClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.ListArticles(context.Background())
	if err == nil {
		t.Fatal("ListArticles() error = nil, want decode error")
	}
}
