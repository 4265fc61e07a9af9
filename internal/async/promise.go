// Package async provides a minimal promise (future) primitive for the action
// pipeline. A Promise settles exactly once with either a value or an error;
// Await blocks until settlement or context cancellation.
//
// The helper is intentionally small: it manages one goroutine handoff and
// nothing else, keeping argument builders and operations free to produce
// values asynchronously without exposing channels in their signatures.
package async

import (
	"context"
	"sync"
)

// Promise is a single-settlement container for an eventual value or error.
// The zero value is not usable; construct with Go, New, Resolved, or Rejected.
type Promise struct {
	done chan struct{}
	once sync.Once

	value any
	err   error
}

// New creates an unsettled Promise along with its resolve and reject
// functions. Only the first settlement wins; later calls are no-ops.
func New() (p *Promise, resolve func(any), reject func(error)) {
	p = &Promise{done: make(chan struct{})}
	return p, p.resolve, p.reject
}

// Go runs fn in a new goroutine and returns a Promise settled with its result.
func Go(fn func() (any, error)) *Promise {
	p := &Promise{done: make(chan struct{})}
	go func() {
		v, err := fn()
		if err != nil {
			p.reject(err)
			return
		}
		p.resolve(v)
	}()
	return p
}

// Resolved returns a Promise already settled with v.
func Resolved(v any) *Promise {
	p := &Promise{done: make(chan struct{})}
	p.resolve(v)
	return p
}

// Rejected returns a Promise already settled with err.
func Rejected(err error) *Promise {
	p := &Promise{done: make(chan struct{})}
	p.reject(err)
	return p
}

// Await blocks until the Promise settles or ctx is done, whichever is first.
// On cancellation the Promise itself remains unsettled and may still settle
// later for other waiters.
func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Promise) resolve(v any) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

func (p *Promise) reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}
