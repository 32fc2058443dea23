package runner

import (
	"context"

	"github.com/ib-77/specialize/pkg/specialize"
)

// Runner composes a fallback with specialized closures (owned -> owned)
type Runner[T, U any] struct {
	param    specialize.Hold[T]
	fallback func(context.Context, T) U
}

// New creates a new runner with a fallback function
func New[T, U any](param T, fallback func(ctx context.Context, t T) U) Runner[T, U] {
	return Runner[T, U]{param: specialize.Own(param), fallback: fallback}
}

// NewRef creates a new runner over a borrowed parameter
func NewRef[T, U any](param *T, fallback func(ctx context.Context, t *T) U) Runner[*T, U] {
	return Runner[*T, U]{param: specialize.Borrow(param), fallback: fallback}
}

// Param returns the Hold carrying the parameter
func (r Runner[T, U]) Param() specialize.Hold[T] {
	return r.param
}

// Run executes the composed chain against the held parameter.
func (r Runner[T, U]) Run(ctx context.Context) U {
	return r.fallback(ctx, r.param.Value())
}

// Specialize registers a closure that handles the run when T and P, and
// U and R, denote the same concrete types. The most recently registered
// match is consulted first and falls through to the previously composed
// function.
func Specialize[P, R, T, U any](r Runner[T, U], f func(ctx context.Context, p P) R) Runner[T, U] {
	fallback := r.fallback

	composed := func(ctx context.Context, t T) U {
		if specialize.Same[T, P]() && specialize.Same[U, R]() {
			p, _ := specialize.Identity[T, P](t)
			u, _ := specialize.Identity[R, U](f(ctx, p))
			return u
		}
		return fallback(ctx, t)
	}

	return Runner[T, U]{param: r.param, fallback: composed}
}

// SpecializeParam specializes on the parameter type only
func SpecializeParam[P, T, U any](r Runner[T, U], f func(ctx context.Context, p P) U) Runner[T, U] {
	return Specialize[P, U](r, f)
}

// SpecializeReturn specializes on the return type only
func SpecializeReturn[R, T, U any](r Runner[T, U], f func(ctx context.Context, t T) R) Runner[T, U] {
	return Specialize[T, R](r, f)
}

// SpecializeMap is Specialize with mapping applied to the parameter before
// the closure and to its return value after.
func SpecializeMap[P, R, T, U any](r Runner[T, U],
	mapParam func(ctx context.Context, p P) P,
	f func(ctx context.Context, t T) U,
	mapReturn func(ctx context.Context, r R) R) Runner[T, U] {

	fallback := r.fallback

	composed := func(ctx context.Context, t T) U {
		if specialize.Same[T, P]() && specialize.Same[U, R]() {
			p, _ := specialize.Identity[T, P](t)
			back, _ := specialize.Identity[P, T](mapParam(ctx, p))
			out, _ := specialize.Identity[U, R](f(ctx, back))
			u, _ := specialize.Identity[R, U](mapReturn(ctx, out))
			return u
		}
		return fallback(ctx, t)
	}

	return Runner[T, U]{param: r.param, fallback: composed}
}

// SpecializeMapParam maps the parameter only
func SpecializeMapParam[P, T, U any](r Runner[T, U],
	mapParam func(ctx context.Context, p P) P,
	f func(ctx context.Context, t T) U) Runner[T, U] {
	return SpecializeMap[P, U](r, mapParam, f, identity[U])
}

// SpecializeMapReturn maps the return value only
func SpecializeMapReturn[R, T, U any](r Runner[T, U],
	f func(ctx context.Context, t T) U,
	mapReturn func(ctx context.Context, r R) R) Runner[T, U] {
	return SpecializeMap[T, R](r, identity[T], f, mapReturn)
}

func identity[T any](_ context.Context, t T) T {
	return t
}
