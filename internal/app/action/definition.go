// Package action implements the action construction and dispatch pipeline:
// immutable action definitions binding an asynchronous operation, an entity
// schema, an optional argument builder, and a response mapper to a unique
// identity. Invoking a definition yields a dispatch-compatible thunk that
// emits a deterministic pending/terminal lifecycle event sequence into the
// store.
package action

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/platform/identity"
	"github.com/mwhitaker/statekit/internal/ports"
)

// Operation is the asynchronous unit of work bound to a definition. Its
// return value may be a plain result, an error, an *async.Promise, or a
// dispatch-aware StateFunc to be invoked with store access.
type Operation func(ctx context.Context, args ...any) any

// Mapper transforms a successful raw result into the payload shape stored by
// the entity cache.
type Mapper func(raw any) (any, error)

// BuilderFunc is an argument builder in the args calling convention: it
// receives the invocation's original arguments.
type BuilderFunc func(args ...any) any

// StateFunc is a callable in the dispatch-aware calling convention used by
// nested builders and operation continuations.
type StateFunc func(ctx context.Context, dispatch ports.Dispatch, getState ports.GetState) any

// identityMapper is the default passthrough response mapper.
func identityMapper(raw any) (any, error) { return raw, nil }

// Definition is an immutable action configuration. All derivation operations
// (Derive, WithSuffix, WithName) return new definitions and never mutate the
// original.
type Definition struct {
	key      string
	id       string
	parentID string
	schema   domain.Schema
	op       Operation
	builder  any
	mapper   Mapper
	ids      identity.Generator
	now      func() time.Time
	maxDepth int
}

// Option configures New.
type Option func(*Definition)

// WithArgBuilder sets the argument builder: a literal value, a BuilderFunc,
// a StateFunc, or an *async.Promise, resolved recursively before the
// operation runs.
func WithArgBuilder(builder any) Option {
	return func(d *Definition) { d.builder = builder }
}

// WithMapper sets the response mapper.
func WithMapper(m Mapper) Option {
	return func(d *Definition) { d.mapper = m }
}

// WithIdentity sets the identity generator, replacing the process-wide one.
func WithIdentity(g identity.Generator) Option {
	return func(d *Definition) { d.ids = g }
}

// WithClock sets the clock used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Definition) { d.now = now }
}

// WithMaxResolveDepth bounds argument builder recursion. Zero (the default)
// means unbounded, matching the behavior consumers of unbounded builders
// already rely on; exceeding a positive bound dispatches an error event
// carrying domain.ErrResolveDepth.
func WithMaxResolveDepth(n int) Option {
	return func(d *Definition) { d.maxDepth = n }
}

// New creates an action definition for key. The schema and operation are
// required; a nil mapper passed via WithMapper is rejected. All validation
// failures are raised here, never deferred into the dispatch pipeline.
func New(key string, schema domain.Schema, op Operation, opts ...Option) (*Definition, error) {
	if schema == nil {
		return nil, fmt.Errorf("action %q: %w", key, domain.ErrMissingSchema)
	}
	if op == nil {
		return nil, fmt.Errorf("action %q: %w", key, domain.ErrMissingOperation)
	}

	d := &Definition{
		key:    key,
		schema: schema,
		op:     op,
		mapper: identityMapper,
		ids:    identity.Shared(),
		now:    time.Now,
	}

	hadMapperOpt := false
	for _, opt := range opts {
		before := d.mapper
		opt(d)
		if d.mapper == nil {
			hadMapperOpt = true
			d.mapper = before
		}
	}
	if hadMapperOpt {
		return nil, fmt.Errorf("action %q: %w", key, domain.ErrNilMapper)
	}

	d.id = d.ids.ActionID(key)
	return d, nil
}

// MustNew is New for static initialization; panics on invalid input.
func MustNew(key string, schema domain.Schema, op Operation, opts ...Option) *Definition {
	d, err := New(key, schema, op, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// ID returns the bound identity.
func (d *Definition) ID() string { return d.id }

// ParentID returns the identity this definition was derived from, or empty
// for roots.
func (d *Definition) ParentID() string { return d.parentID }

// String returns the bound identity so definitions can serve as map keys and
// log fields.
func (d *Definition) String() string { return d.id }

// Schema returns the bound entity schema.
func (d *Definition) Schema() domain.Schema { return d.schema }

// EntityName returns the schema's entity cache key.
func (d *Definition) EntityName() string { return d.schema.EntityKey() }

// ExtractEntityID delegates to the schema's identifier extraction.
func (d *Definition) ExtractEntityID(item any) (any, error) {
	return d.schema.ExtractID(item)
}

// Derive produces a true copy: same schema, operation, builder, and mapper,
// but a freshly generated root identity with no parent relationship.
func (d *Definition) Derive() *Definition {
	cp := *d
	cp.id = d.ids.Fresh(d.key)
	cp.parentID = ""
	return &cp
}

// WithSuffix produces a derived definition whose identity is this identity
// plus the space-joined parts, preserving the parent relationship. Used to
// namespace the same logical operation per instance.
func (d *Definition) WithSuffix(parts ...any) *Definition {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return d.rename(strings.Join(strs, " "))
}

// WithName produces a derived definition whose identity is this identity plus
// the given name, preserving the parent relationship.
func (d *Definition) WithName(name string) *Definition {
	return d.rename(name)
}

func (d *Definition) rename(suffix string) *Definition {
	cp := *d
	cp.id = d.id + " " + suffix
	cp.parentID = d.id
	return &cp
}

// Clear returns a thunk that dispatches the sentinel clear event for this
// action, letting external state-clearing logic reset its slice without
// affecting others.
func (d *Definition) Clear() ports.Thunk {
	return func(ctx context.Context, dispatch ports.Dispatch, _ ports.GetState) error {
		return dispatch(ctx, lifecycle.Clear(d.id, d.schema.EntityKey(), d.now()))
	}
}

// Invoke returns a dispatch-compatible thunk for one invocation with the
// given arguments. The thunk dispatches the pending event synchronously
// before any asynchronous work, resolves arguments through the builder when
// one is bound, invokes the operation, and routes every failure, including
// recovered panics, through the single error event channel. The returned
// error is non-nil only when the response mapper fails, which is reported on
// both channels.
func (d *Definition) Invoke(args ...any) ports.Thunk {
	return func(ctx context.Context, dispatch ports.Dispatch, getState ports.GetState) (err error) {
		failure := lifecycle.NewBuilder(d.id, d.parentID, lifecycle.StatusError, d.schema, d.now)

		defer func() {
			if v := recover(); v != nil {
				_ = dispatch(ctx, failure(fmt.Errorf("%v", v), nil, nil, v))
				err = nil
			}
		}()

		pending := lifecycle.NewBuilder(d.id, d.parentID, lifecycle.StatusPending, d.schema, d.now)
		if dErr := dispatch(ctx, pending(nil, nil, nil, nil)); dErr != nil {
			return dErr
		}

		resolved := args
		if d.builder != nil {
			r, _, rErr := resolveArgs(ctx, dispatch, getState, args, d.builder, d.maxDepth)
			if rErr != nil {
				return dispatch(ctx, failure(rErr, nil, nil, rErr))
			}
			resolved = r
		}

		success := lifecycle.NewBuilder(d.id, d.parentID, lifecycle.StatusSuccess, d.schema, d.now)
		onResult := newResultHandler(d.id, d.mapper, success, failure)

		return invokeOperation(ctx, d.op, resolved, dispatch, getState, onResult)
	}
}
