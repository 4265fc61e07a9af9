package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/mwhitaker/statekit/internal/adapters/http"
	"github.com/mwhitaker/statekit/internal/adapters/http/handlers"
	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockStateService) {
	t.Helper()
	svc := mocks.NewMockStateService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ah := handlers.NewArticleHandler(svc)
	ach := handlers.NewActionHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(ah, ach, hh)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/articles"},
		{http.MethodPost, "/api/v1/refresh/articles"},
		{http.MethodPost, "/api/v1/refresh/articles/{id}"},
		{http.MethodPost, "/api/v1/refresh/authors/{id}"},
		{http.MethodGet, "/api/v1/actions/{actionID}"},
		{http.MethodDelete, "/api/v1/actions/{actionID}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockStateService(t)
	registry := mocks.NewMockHealthRegistry(t)

	ah := handlers.NewArticleHandler(svc)
	ach := handlers.NewActionHandler(svc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(ah, ach, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListArticles(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	svc.EXPECT().Articles().Return([]catalog.Article{}, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationGetActionDecodesID(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	state := lifecycle.ActionState{
		Latest: lifecycle.Event{
			Time:       time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
			ActionID:   "load articles_tok",
			Status:     lifecycle.StatusSuccess,
			EntityName: "articles",
		},
	}
	svc.EXPECT().ActionState("load articles_tok").Return(state, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions/load%20articles_tok", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/articles", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
