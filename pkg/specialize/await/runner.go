package await

import (
	"context"

	"github.com/ib-77/specialize/pkg/specialize"
)

// Runner composes a deferred fallback with specialized closures. It is
// the deferred twin of runner.Runner: steps and fallback may suspend, and
// Run awaits one single linear continuation.
type Runner[T, U any] struct {
	param    specialize.Hold[T]
	fallback func(context.Context, T) (U, error)
}

// NewRunner creates a new deferred runner with a fallback function
func NewRunner[T, U any](param T, fallback func(ctx context.Context, t T) (U, error)) Runner[T, U] {
	return Runner[T, U]{param: specialize.Own(param), fallback: fallback}
}

// NewRunnerRef creates a new deferred runner over a borrowed parameter
func NewRunnerRef[T, U any](param *T, fallback func(ctx context.Context, t *T) (U, error)) Runner[*T, U] {
	return Runner[*T, U]{param: specialize.Borrow(param), fallback: fallback}
}

// Param returns the Hold carrying the parameter
func (r Runner[T, U]) Param() specialize.Hold[T] {
	return r.param
}

// Run executes the composed chain against the held parameter. The only
// non-nil error is one surfaced by a step, the fallback, or ctx.
func (r Runner[T, U]) Run(ctx context.Context) (U, error) {
	if err := ctx.Err(); err != nil {
		var zero U
		return zero, err
	}
	return r.fallback(ctx, r.param.Value())
}

// Defer turns Run into a Future resolving with its outcome.
func (r Runner[T, U]) Defer(ctx context.Context) *Future[U] {
	return Go(ctx, r.Run)
}

// Specialize registers a closure that handles the run when T and P, and
// U and R, denote the same concrete types. The most recently registered
// match is consulted first and falls through to the previously composed
// function.
func Specialize[P, R, T, U any](r Runner[T, U], f func(ctx context.Context, p P) (R, error)) Runner[T, U] {
	fallback := r.fallback

	composed := func(ctx context.Context, t T) (U, error) {
		if specialize.Same[T, P]() && specialize.Same[U, R]() {
			p, _ := specialize.Identity[T, P](t)

			out, err := f(ctx, p)
			if err != nil {
				var zero U
				return zero, err
			}

			u, _ := specialize.Identity[R, U](out)
			return u, nil
		}
		return fallback(ctx, t)
	}

	return Runner[T, U]{param: r.param, fallback: composed}
}

// SpecializeParam specializes on the parameter type only
func SpecializeParam[P, T, U any](r Runner[T, U], f func(ctx context.Context, p P) (U, error)) Runner[T, U] {
	return Specialize[P, U](r, f)
}

// SpecializeReturn specializes on the return type only
func SpecializeReturn[R, T, U any](r Runner[T, U], f func(ctx context.Context, t T) (R, error)) Runner[T, U] {
	return Specialize[T, R](r, f)
}

// SpecializeAwait registers a closure whose result is a Future; the
// composed function awaits it before re-typing the result.
func SpecializeAwait[P, R, T, U any](r Runner[T, U], f func(ctx context.Context, p P) *Future[R]) Runner[T, U] {
	return Specialize[P, R](r, func(ctx context.Context, p P) (R, error) {
		return f(ctx, p).Await(ctx)
	})
}
