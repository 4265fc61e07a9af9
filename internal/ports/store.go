package ports

import (
	"context"

	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
)

// Dispatch submits a message to the store. The message is either a
// lifecycle.Event value or a Thunk; anything else is rejected by the store.
type Dispatch func(ctx context.Context, msg any) error

// GetState returns the store's current state snapshot. It is passed through
// untouched to argument builders and operation callables that request it.
type GetState func() lifecycle.State

// Thunk is a dispatch-compatible callable: the store invokes it with its own
// Dispatch and GetState so the thunk can emit events and read state. It is
// how action invocations are submitted to the store.
type Thunk func(ctx context.Context, dispatch Dispatch, getState GetState) error

// Store is the store port consumed by the application layer and inbound
// adapters. Implemented by app/store.
type Store interface {
	// Dispatch applies a lifecycle event or runs a thunk. Thunks execute
	// synchronously on the caller's goroutine.
	Dispatch(ctx context.Context, msg any) error

	// GetState returns a snapshot of the current state.
	GetState() lifecycle.State

	// Version returns a counter that increases on every state change,
	// used by memoized selectors to detect staleness.
	Version() uint64
}
