// Package coerce terminates a narrowing chain by converting the held
// value to a well-known representation (string, numeric, bool, duration)
// once all candidate types are exhausted.
//
// Conversion is value-based and delegated to spf13/cast, so it is wider
// than type identity: an int held as the chain's leftover still coerces
// to a string. Failures are ordinary errors, not the no-match branch.
package coerce
