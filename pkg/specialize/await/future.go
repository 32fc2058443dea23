package await

import (
	"context"
	"sync"
)

// Future holds the result of a deferred computation. A Future resolves
// exactly once; Await never observes a partially written result.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
	once  sync.Once
}

// Go starts fn in its own goroutine and returns a Future that resolves
// with its result.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer f.once.Do(func() { close(f.done) })
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Ready returns an already-resolved Future carrying v.
func Ready[T any](v T) *Future[T] {
	f := &Future[T]{value: v, done: make(chan struct{})}
	f.once.Do(func() { close(f.done) })
	return f
}

// Reject returns an already-resolved Future carrying err.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	f.once.Do(func() { close(f.done) })
	return f
}

// Await blocks until the computation completes or ctx is done. There is
// no cancellation beyond ctx; an abandoned computation keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-f.done:
		return f.value, f.err
	}
}

// Resolved reports whether Await would return without blocking.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
