package action

import (
	"context"

	"github.com/mwhitaker/statekit/internal/ports"
)

// invokeOperation calls the operation with the resolved arguments and
// normalizes its possible return shapes (promise, callable, plain value)
// into exactly one call to onResult. At-most-one terminal event per
// invocation follows from onResult being invoked exactly once on every
// branch.
func invokeOperation(
	ctx context.Context,
	op Operation,
	args []any,
	dispatch ports.Dispatch,
	getState ports.GetState,
	onResult resultFn,
) error {
	return settleOutcome(ctx, op(ctx, args...), dispatch, getState, onResult)
}

// settleOutcome classifies one operation outcome and reports it.
func settleOutcome(
	ctx context.Context,
	v any,
	dispatch ports.Dispatch,
	getState ports.GetState,
	onResult resultFn,
) error {
	o := classify(v)
	switch o.kind {
	case outcomePending:
		return settleAwaited(ctx, o.promise, dispatch, getState, onResult)

	case outcomeStateCallable:
		return settleCallable(ctx, o.stateFn(ctx, dispatch, getState), dispatch, getState, onResult)

	case outcomeArgsCallable:
		return settleCallable(ctx, o.argsFn(), dispatch, getState, onResult)

	default:
		return settleValue(ctx, o.value, dispatch, getState, onResult)
	}
}

// settleCallable handles the result of a callable returned by the operation.
// A nil result is the deliberate "operation declined to produce data"
// outcome: no error, no value. A promise result is awaited; anything else is
// the final value.
func settleCallable(
	ctx context.Context,
	result any,
	dispatch ports.Dispatch,
	getState ports.GetState,
	onResult resultFn,
) error {
	if result == nil {
		return onResult(ctx, dispatch, getState, nil, nil)
	}
	return settleOutcome(ctx, result, dispatch, getState, onResult)
}

// settleAwaited awaits a promise and reports its settlement.
func settleAwaited(
	ctx context.Context,
	p awaiter,
	dispatch ports.Dispatch,
	getState ports.GetState,
	onResult resultFn,
) error {
	v, err := p.Await(ctx)
	if err != nil {
		return onResult(ctx, dispatch, getState, err, nil)
	}
	if v == nil {
		return onResult(ctx, dispatch, getState, nil, nil)
	}
	return settleOutcome(ctx, v, dispatch, getState, onResult)
}

// settleValue reports a terminal value, treating error values as failures.
func settleValue(
	ctx context.Context,
	v any,
	dispatch ports.Dispatch,
	getState ports.GetState,
	onResult resultFn,
) error {
	if err, ok := v.(error); ok && err != nil {
		return onResult(ctx, dispatch, getState, err, nil)
	}
	return onResult(ctx, dispatch, getState, nil, v)
}

// awaiter abstracts promise settlement for the invoker.
type awaiter interface {
	Await(ctx context.Context) (any, error)
}
