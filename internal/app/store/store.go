// Package store implements the dispatch runtime: an in-memory store that
// reduces lifecycle events into per-action state and a normalized entity
// cache, runs thunks, and notifies subscribers after each change.
//
// The store is the only shared mutable resource between concurrent action
// invocations. Events are reduced under an exclusive lock; thunks execute
// synchronously on the calling goroutine so the pending event of an
// invocation is always reduced before its terminal event.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/metric"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/platform/telemetry"
	"github.com/mwhitaker/statekit/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

// Store is the in-memory dispatch runtime.
type Store struct {
	mu       sync.RWMutex
	actions  map[string]lifecycle.ActionState
	entities map[string]map[string]any
	version  atomic.Uint64

	subMu   sync.Mutex
	subs    map[int]func(lifecycle.Event)
	nextSub int

	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// Option configures New.
type Option func(*Store)

// WithMetrics enables event dispatch metrics. Safe to omit.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates an empty Store. A nil logger discards log output.
func New(logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Store{
		actions:  make(map[string]lifecycle.ActionState),
		entities: make(map[string]map[string]any),
		subs:     make(map[int]func(lifecycle.Event)),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies a lifecycle event or runs a thunk. Thunks receive the
// store's own Dispatch and GetState and run synchronously on the caller's
// goroutine; callers wanting fire-and-forget semantics dispatch from their
// own goroutine.
func (s *Store) Dispatch(ctx context.Context, msg any) error {
	switch m := msg.(type) {
	case lifecycle.Event:
		s.apply(ctx, m)
		return nil
	case ports.Thunk:
		return m(ctx, s.Dispatch, s.GetState)
	case func(ctx context.Context, dispatch ports.Dispatch, getState ports.GetState) error:
		return m(ctx, s.Dispatch, s.GetState)
	default:
		return fmt.Errorf("store: cannot dispatch message of type %T", msg)
	}
}

// GetState returns a snapshot of the current state. The snapshot's maps are
// copies; entity values are shared and must be treated as read-only.
func (s *Store) GetState() lifecycle.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actions := make(map[string]lifecycle.ActionState, len(s.actions))
	for k, v := range s.actions {
		actions[k] = v
	}

	entities := make(map[string]map[string]any, len(s.entities))
	for name, byID := range s.entities {
		inner := make(map[string]any, len(byID))
		for id, v := range byID {
			inner[id] = v
		}
		entities[name] = inner
	}

	return lifecycle.State{Actions: actions, Entities: entities}
}

// Version returns the monotonic change counter.
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Subscribe registers fn to be called after every reduced event. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(lifecycle.Event)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// apply reduces one event under the write lock, then notifies subscribers
// and records metrics outside it.
func (s *Store) apply(ctx context.Context, ev lifecycle.Event) {
	s.mu.Lock()
	prev, existed := s.actions[ev.ActionID]
	if ev.Type == lifecycle.TypeClear {
		delete(s.actions, ev.ActionID)
	} else {
		s.reduce(ev)
	}
	s.mu.Unlock()

	s.version.Add(1)

	s.logger.DebugContext(ctx, "event dispatched",
		slog.String("action_id", ev.ActionID),
		slog.String("status", string(ev.Status)),
		slog.String("entity", ev.EntityName),
		slog.Bool("has_error", ev.HasError),
	)

	if s.metrics != nil {
		s.metrics.EventsDispatched.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrStatus.String(string(ev.Status)),
			telemetry.AttrEntity.String(ev.EntityName),
		))

		// A terminal event following a pending one closes out an invocation.
		if !ev.IsFetching && ev.Type != lifecycle.TypeClear && existed && prev.Latest.IsFetching {
			s.metrics.ActionDuration.Record(ctx, ev.Time.Sub(prev.Latest.Time).Seconds(), metric.WithAttributes(
				telemetry.AttrAction.String(ev.ActionID),
				telemetry.AttrStatus.String(string(ev.Status)),
			))
		}
	}

	s.notify(ev)
}

// reduce stores the latest event for its action, carries the previous
// payload forward, and merges successful payload sources into the entity
// cache.
func (s *Store) reduce(ev lifecycle.Event) {
	prev, existed := s.actions[ev.ActionID]

	as := lifecycle.ActionState{Latest: ev}
	if existed {
		if prev.Latest.Payload != nil {
			as.PrevPayload = prev.Latest.Payload
		} else {
			as.PrevPayload = prev.PrevPayload
		}
	}
	s.actions[ev.ActionID] = as

	if ev.Status == lifecycle.StatusSuccess && !ev.HasError && ev.PayloadSource != nil {
		s.merge(ev)
	}
}

// merge writes the event's payload source into the entity cache keyed by the
// identifiers already extracted on the event.
func (s *Store) merge(ev lifecycle.Event) {
	byID := s.entities[ev.EntityName]
	if byID == nil {
		byID = make(map[string]any)
		s.entities[ev.EntityName] = byID
	}

	if ev.IsArrayData {
		ids, ok := ev.Payload.([]any)
		if !ok {
			return
		}
		src := reflect.ValueOf(ev.PayloadSource)
		for i, id := range ids {
			if i < src.Len() {
				byID[lifecycle.KeyOf(id)] = src.Index(i).Interface()
			}
		}
		return
	}

	byID[lifecycle.KeyOf(ev.Payload)] = ev.PayloadSource
}

// notify calls subscribers with the reduced event. Subscriber panics are not
// recovered; subscribers are trusted in-process listeners.
func (s *Store) notify(ev lifecycle.Event) {
	s.subMu.Lock()
	fns := make([]func(lifecycle.Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
