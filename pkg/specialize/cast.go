package specialize

// Same reports whether the type parameters T and U denote the same
// concrete type. Both sides of the comparison come from the instantiated
// type parameters, never from a value's dynamic type, so a concrete type
// that merely implements an interface U does not count as U.
func Same[T, U any]() bool {
	return TypeOf[T]() == TypeOf[U]()
}

// Identity attempts to cast an owned T to U. The zero U and false are
// returned when they are not the same type; nothing is copied on mismatch.
func Identity[T, U any](v T) (U, bool) {
	var zero U
	if !Same[T, U]() {
		return zero, false
	}
	u, ok := any(v).(U)
	if !ok {
		// a nil interface value never asserts, but the types agree and
		// the zero U is exactly that nil
		return zero, true
	}
	return u, true
}

// IdentityRef attempts to cast *T to *U without dereferencing.
func IdentityRef[T, U any](p *T) (*U, bool) {
	u, ok := any(p).(*U)
	return u, ok
}

// As asserts the dynamic type of v against U. Unlike Identity it inspects
// the value, so U may be an interface the value implements.
func As[U any](v any) (U, bool) {
	u, ok := v.(U)
	return u, ok
}
