package action

import (
	"context"

	"github.com/mwhitaker/statekit/internal/async"
	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/ports"
)

// outcomeKind tags the classification of a value produced at a pipeline
// boundary: terminal, callable (in either calling convention), or pending.
type outcomeKind uint8

const (
	outcomeValue outcomeKind = iota
	outcomeArgsCallable
	outcomeStateCallable
	outcomePending
)

// outcome is the sum type every accepted shape is normalized into before
// further processing.
type outcome struct {
	kind    outcomeKind
	value   any
	argsFn  BuilderFunc
	stateFn StateFunc
	promise *async.Promise
}

// classify normalizes v into an outcome. Both the named function types and
// their underlying raw shapes are accepted.
func classify(v any) outcome {
	switch t := v.(type) {
	case BuilderFunc:
		return outcome{kind: outcomeArgsCallable, argsFn: t}
	case func(args ...any) any:
		return outcome{kind: outcomeArgsCallable, argsFn: t}
	case StateFunc:
		return outcome{kind: outcomeStateCallable, stateFn: t}
	case func(context.Context, ports.Dispatch, ports.GetState) any:
		return outcome{kind: outcomeStateCallable, stateFn: t}
	case *async.Promise:
		return outcome{kind: outcomePending, promise: t}
	default:
		return outcome{kind: outcomeValue, value: v}
	}
}

// resolveArgs resolves an argument builder to a final argument list by
// repeatedly invoking callables and awaiting promises until a terminal value
// remains. Args-convention callables receive the invocation's original
// arguments; dispatch-aware callables receive store access. The step count is
// returned for tests and depth accounting.
//
// maxDepth of zero leaves recursion unbounded; a positive bound returns
// domain.ErrResolveDepth once exceeded.
func resolveArgs(
	ctx context.Context,
	dispatch ports.Dispatch,
	getState ports.GetState,
	original []any,
	builder any,
	maxDepth int,
) ([]any, int, error) {
	current := builder
	steps := 0

	for {
		if maxDepth > 0 && steps > maxDepth {
			return nil, steps, domain.ErrResolveDepth
		}

		o := classify(current)
		switch o.kind {
		case outcomeArgsCallable:
			current = o.argsFn(original...)
		case outcomeStateCallable:
			current = o.stateFn(ctx, dispatch, getState)
		case outcomePending:
			v, err := o.promise.Await(ctx)
			if err != nil {
				return nil, steps, err
			}
			current = v
		default:
			return normalizeArgs(o.value), steps, nil
		}
		steps++
	}
}

// normalizeArgs converts a terminal builder value into the positional
// argument list passed to the operation: a []any is used as-is, nil becomes
// an empty list, anything else is wrapped as a single argument.
func normalizeArgs(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{v}
	}
}
