package specialize

import "time"

type ValueProvider[T any] interface {
	// Value returns the held value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMode defines an interface for types that expose how a value is held
type WithMode[T any] interface {
	ValueProvider[T]
	// Mode returns the ownership mode of the held value
	Mode() Mode
	// IsBorrowed returns true if the value is held through a reference
	IsBorrowed() bool
}
