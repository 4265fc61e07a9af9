// Package fanout runs a function across a slice of items with a bounded
// number of concurrent goroutines, keeping results in input order. The
// application layer uses it to dispatch batches of per-entity refreshes
// without flooding the store or the downstream API.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for one item: Value on success, Err on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines at once
// and blocks until all of them return. results[i] corresponds to items[i].
//
// A goroutine still waiting for a worker slot when ctx is canceled records
// ctx.Err() without calling fn; goroutines that already hold a slot run to
// completion, so fn should watch ctx itself if it can be canceled.
//
// maxWorkers must be >= 1. An empty items slice returns an empty non-nil
// result slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	slots := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}
