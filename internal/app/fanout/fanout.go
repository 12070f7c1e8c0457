// Package fanout runs a function over a slice with a fixed pool of workers
// and returns the outcomes in input order. ClassifyBatch uses it to bound the
// number of descriptions in flight against the model at once.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome for one input item. Err is non-nil when fn failed,
// panicked, or was never called because ctx ended first.
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError wraps a value recovered from fn.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: panic: %v", e.Value)
}

// Run calls fn for each item using at most workers goroutines (minimum 1).
// Results[i] always corresponds to items[i].
//
// Workers stop taking new items once ctx is done; the remaining items get
// ctx.Err(). An item already handed to fn runs to completion, so fn should
// watch ctx itself if it can block.
//
// Run blocks until every item has a result. An empty input yields an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers = max(1, min(workers, len(items)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				results[i] = call(ctx, items[i], fn)
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v}}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
