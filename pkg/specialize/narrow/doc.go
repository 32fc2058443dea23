// Package narrow provides a fluent Attempt[T] for trying candidate
// concrete types against a generically-typed value.
//
// A failed TryInto is not an error: it is the designed "no match" branch,
// signaled by comma-ok and by handing the unchanged attempt back so the
// next candidate can run.
//
// Key operations:
// - Start/From/FromRef: begin an attempt from a Hold, a value, or a reference
// - TryInto/TryIntoRef: narrow to a candidate type, keeping the attempt on miss
// - OrElse/OrElseFrom: rewrap a synchronously computed replacement
// - OrElseAwait: rewrap the output of a deferred computation
// - Ensure: run side effects without changing the held value
// - Unwrap/UnwrapOr/Finally: terminal extraction after the chain
//
// For terminal coercion to well-known representations, see package coerce.
package narrow
