package narrow

import (
	"context"

	"github.com/ib-77/specialize/pkg/specialize"
	"github.com/ib-77/specialize/pkg/specialize/await"
)

// Attempt wraps a specialize.Hold with context to enable fluent narrowing
type Attempt[T any] struct {
	ctx  context.Context
	held specialize.Hold[T]
}

// Start creates a new attempt from a specialize.Hold
func Start[T any](ctx context.Context, h specialize.Hold[T]) Attempt[T] {
	return Attempt[T]{ctx: ctx, held: h}
}

// From creates a new attempt owning value
func From[T any](ctx context.Context, value T) Attempt[T] {
	return Start(ctx, specialize.Own(value))
}

// FromRef creates a new attempt borrowing the value behind p
func FromRef[T any](ctx context.Context, p *T) Attempt[*T] {
	return Start(ctx, specialize.Borrow(p))
}

// Held returns the underlying specialize.Hold
func (a Attempt[T]) Held() specialize.Hold[T] {
	return a.held
}

// TryInto attempts to narrow the held value to U. It succeeds iff T and U
// denote the same concrete type; on failure the input attempt is returned
// unchanged (same hold, same id) so the next candidate type can run.
func TryInto[U, T any](a Attempt[T]) (U, Attempt[T], bool) {
	if u, ok := specialize.Identity[T, U](a.held.Value()); ok {
		return u, a, true
	}

	var zero U
	return zero, a, false
}

// TryIntoRef narrows a borrowed attempt to *U without dereferencing.
func TryIntoRef[U, T any](a Attempt[*T]) (*U, Attempt[*T], bool) {
	if u, ok := specialize.IdentityRef[T, U](a.held.Value()); ok {
		return u, a, true
	}

	return nil, a, false
}

// OrElse computes a replacement value and rewraps it. The replacement is
// owned and gets a fresh hold identity.
func (a Attempt[T]) OrElse(fallback func(ctx context.Context, t T) T) Attempt[T] {
	return Attempt[T]{ctx: a.ctx, held: specialize.Own(fallback(a.ctx, a.held.Value()))}
}

// OrElseFrom is OrElse for fallbacks that switch the held type
func OrElseFrom[T, U any](a Attempt[T], fallback func(ctx context.Context, t T) U) Attempt[U] {
	return Attempt[U]{ctx: a.ctx, held: specialize.Own(fallback(a.ctx, a.held.Value()))}
}

// OrElseAwait rewraps the attempt around the output of a deferred
// computation. The call suspends on a single sequential await; the only
// cancellation is the attempt's own context.
func (a Attempt[T]) OrElseAwait(f *await.Future[T]) (Attempt[T], error) {
	if specialize.IsNil(f) {
		return a, nil
	}

	v, err := f.Await(a.ctx)
	if err != nil {
		return a, err
	}

	return Attempt[T]{ctx: a.ctx, held: specialize.Own(v)}, nil
}

// Ensure triggers a side effect for the held value without changing it
func (a Attempt[T]) Ensure(onValue func(ctx context.Context, t T)) Attempt[T] {
	if onValue != nil && a.held.HasValue() {
		onValue(a.ctx, a.held.Value())
	}
	return a
}

// Unwrap returns the held value once all candidate types are exhausted.
func (a Attempt[T]) Unwrap() T {
	return a.held.Value()
}

// UnwrapOr returns the held value, or def when the attempt holds nothing.
func (a Attempt[T]) UnwrapOr(def T) T {
	if !a.held.HasValue() {
		return def
	}
	return a.held.Value()
}

// Finally collapses the attempt to a final value
func Finally[T, U any](a Attempt[T], onValue func(ctx context.Context, t T) U) U {
	return onValue(a.ctx, a.held.Value())
}
