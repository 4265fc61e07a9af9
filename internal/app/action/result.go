package action

import (
	"context"
	"fmt"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/ports"
)

// resultFn is the terminal-event callback: it classifies a raw outcome and
// dispatches exactly one success or error event.
type resultFn func(ctx context.Context, dispatch ports.Dispatch, getState ports.GetState, opErr error, raw any) error

// MapperError reports a response mapper failure on an otherwise-successful
// result. It is dispatched as an error event AND returned to the invoking
// caller, the single dual-channel case in the error design.
type MapperError struct {
	ActionID string
	Err      error
}

func (e *MapperError) Error() string {
	return fmt.Sprintf("response mapper failed for action %q: %v", e.ActionID, e.Err)
}

func (e *MapperError) Unwrap() error { return e.Err }

// newResultHandler wires the success and error event builders behind one
// outcome classifier. Operation errors become a single error event carrying
// the original error as the backend response. Successes run the mapper; the
// mapped value becomes the payload source while the raw result is preserved
// unmapped on the event.
func newResultHandler(actionID string, mapper Mapper, success, failure lifecycle.BuildFn) resultFn {
	return func(ctx context.Context, dispatch ports.Dispatch, _ ports.GetState, opErr error, raw any) error {
		if opErr != nil {
			return dispatch(ctx, failure(opErr, nil, nil, opErr))
		}

		mapped, err := mapper(raw)
		if err != nil {
			mErr := &MapperError{ActionID: actionID, Err: err}
			if dErr := dispatch(ctx, failure(mErr, nil, raw, raw)); dErr != nil {
				return dErr
			}
			return mErr
		}

		return dispatch(ctx, success(nil, mapped, raw, raw))
	}
}
