// Package selector provides memoized derived views over the store: a generic
// compute-once-per-version selector, the stable per-action read model, and
// denormalization of payload identifier lists through the entity cache.
package selector

import (
	"sync"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
)

// Source is the minimal store surface selectors read from.
// Implemented by app/store.
type Source interface {
	GetState() lifecycle.State
	Version() uint64
}

// Selector memoizes a derived value computed from store state. The compute
// function re-runs only when the store version has changed since the cached
// result; otherwise the cached value is returned.
//
// Selector is safe for concurrent use. The compute function must be pure
// with respect to the state snapshot it receives.
type Selector[T any] struct {
	mu      sync.Mutex
	compute func(lifecycle.State) T
	version uint64
	cached  T
	valid   bool
}

// New creates a Selector for the given compute function.
func New[T any](compute func(lifecycle.State) T) *Selector[T] {
	return &Selector[T]{compute: compute}
}

// Select returns the derived value, recomputing if the source has changed.
func (s *Selector[T]) Select(src Source) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := src.Version()
	if s.valid && v == s.version {
		return s.cached
	}

	s.cached = s.compute(src.GetState())
	s.version = v
	s.valid = true
	return s.cached
}

// Invalidate drops the cached value, forcing the next Select to recompute.
func (s *Selector[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
}
