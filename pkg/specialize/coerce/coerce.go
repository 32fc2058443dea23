package coerce

import (
	"time"

	"github.com/spf13/cast"

	"github.com/ib-77/specialize/pkg/specialize/narrow"
)

// To coerces the value held by an exhausted attempt to the basic type B.
// Unlike a failed TryInto, a coercion failure is a real error: the held
// value has no representation as B.
func To[B cast.Basic, T any](a narrow.Attempt[T]) (B, error) {
	return cast.ToE[B](a.Unwrap())
}

// Must is To, panicking on coercion failure.
func Must[B cast.Basic, T any](a narrow.Attempt[T]) B {
	b, err := To[B](a)
	if err != nil {
		panic(err)
	}
	return b
}

// Or is To, substituting def on coercion failure.
func Or[B cast.Basic, T any](a narrow.Attempt[T], def B) B {
	b, err := To[B](a)
	if err != nil {
		return def
	}
	return b
}

func String[T any](a narrow.Attempt[T]) (string, error) {
	return cast.ToStringE(a.Unwrap())
}

func Int[T any](a narrow.Attempt[T]) (int, error) {
	return cast.ToIntE(a.Unwrap())
}

func Int64[T any](a narrow.Attempt[T]) (int64, error) {
	return cast.ToInt64E(a.Unwrap())
}

func Float64[T any](a narrow.Attempt[T]) (float64, error) {
	return cast.ToFloat64E(a.Unwrap())
}

func Bool[T any](a narrow.Attempt[T]) (bool, error) {
	return cast.ToBoolE(a.Unwrap())
}

func Duration[T any](a narrow.Attempt[T]) (time.Duration, error) {
	return cast.ToDurationE(a.Unwrap())
}
