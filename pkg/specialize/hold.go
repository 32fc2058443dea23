package specialize

import (
	"time"

	"github.com/google/uuid"
)

// Mode tags how a Hold acquired its value.
type Mode int

const (
	Owned Mode = iota
	Borrowed
)

type Hold[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	mode      Mode
	hasValue  bool
}

func Own[T any](v T) Hold[T] {
	return Hold[T]{
		value:     v,
		mode:      Owned,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Borrow[T any](p *T) Hold[*T] {
	return Hold[*T]{
		value:     p,
		mode:      Borrowed,
		hasValue:  p != nil,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Empty[T any]() Hold[T] {
	return Hold[T]{
		mode:      Owned,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

//func BorrowOwned[T any](v T) Hold[T] {
//	return Hold[T]{
//		value:     v,
//		mode:      Borrowed,
//		hasValue:  true,
//		createdAt: time.Now().UTC(),
//		id:        uuid.New(),
//	}
//}

func (h Hold[T]) Value() T {
	return h.value
}

func (h Hold[T]) Mode() Mode {
	return h.mode
}

func (h Hold[T]) IsBorrowed() bool {
	return h.mode == Borrowed
}

func (h Hold[T]) HasValue() bool {
	return h.hasValue
}

func (h Hold[T]) CreatedAt() time.Time {
	return h.createdAt
}

func (h Hold[T]) Id() uuid.UUID {
	return h.id
}
