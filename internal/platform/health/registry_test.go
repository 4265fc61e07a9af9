package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mwhitaker/statekit/internal/platform/health"
	"github.com/mwhitaker/statekit/mocks"
)

func stubChecker(t *testing.T, name string, result error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(result)
	return c
}

func TestCheckAll_EmptyRegistry(t *testing.T) {
	t.Parallel()

	results := health.New().CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(stubChecker(t, "catalog-api", nil))
	r.Register(stubChecker(t, "cache", nil))

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["catalog-api"] != nil {
		t.Errorf("catalog-api check = %v, want nil", results["catalog-api"])
	}
	if results["cache"] != nil {
		t.Errorf("cache check = %v, want nil", results["cache"])
	}
}

func TestCheckAll_MixedResults(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")

	r := health.New()
	r.Register(stubChecker(t, "cache", nil))
	r.Register(stubChecker(t, "catalog-api", refused))

	results := r.CheckAll(context.Background())

	if results["cache"] != nil {
		t.Errorf("cache check = %v, want nil", results["cache"])
	}
	if results["catalog-api"] == nil {
		t.Fatal("catalog-api check = nil, want error")
	}
	if results["catalog-api"].Error() != "connection refused" {
		t.Errorf("catalog-api check = %q, want %q", results["catalog-api"].Error(), "connection refused")
	}
}

func TestCheckAll_PassesContextThrough(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("catalog-api")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["catalog-api"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["catalog-api"])
	}
}

func TestCheckAll_DuplicateNamesLastWriteWins(t *testing.T) {
	t.Parallel()

	secondErr := errors.New("second failure")

	r := health.New()
	r.Register(stubChecker(t, "cache", nil))
	r.Register(stubChecker(t, "cache", secondErr))

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["cache"]
	if !ok {
		t.Fatal(`expected result for key "cache", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("cache check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Interleave registrations with CheckAll calls; the race detector flags
	// any locking mistake.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
