// Package runner composes specialized behavior over a generic parameter
// by wrapping a fallback function with type-identity guarded closures.
//
// Each Specialize* call produces a new runner whose composed function
// first checks whether the registered closure's types match the runner's
// type parameters; on a miss it falls through to the previously composed
// function, ending at the fallback given to New.
//
// Key operations:
// - New/NewRef: create a runner from an owned or borrowed parameter
// - Specialize: guard on both the parameter and return type
// - SpecializeParam/SpecializeReturn: guard on one side only
// - SpecializeMap*: additionally map the parameter and/or return value
// - Run: execute the composed chain
//
// Borrowed parameters and returns need no dedicated runner types: pointer
// types are ordinary type arguments, so Runner[*T, U] specializes on
// *P exactly like Runner[T, U] does on P.
package runner
