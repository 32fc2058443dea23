package specialize

import (
	"testing"

	"github.com/google/uuid"
)

func TestOwn(t *testing.T) {
	t.Parallel()
	h := Own(5)
	if h.Value() != 5 || h.Mode() != Owned || !h.HasValue() {
		t.Fatalf("expected owned 5, got: val=%v, mode=%v, has=%v", h.Value(), h.Mode(), h.HasValue())
	}
	if h.Id() == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
	if h.CreatedAt().IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestBorrow(t *testing.T) {
	t.Parallel()
	n := 5
	h := Borrow(&n)
	if h.Value() != &n || !h.IsBorrowed() || !h.HasValue() {
		t.Fatalf("expected borrowed pointer, got: mode=%v, has=%v", h.Mode(), h.HasValue())
	}
}

func TestBorrow_NilPointer(t *testing.T) {
	t.Parallel()
	h := Borrow[int](nil)
	if h.HasValue() {
		t.Fatalf("expected no value behind a nil pointer")
	}
	if !h.IsBorrowed() {
		t.Fatalf("expected borrowed mode")
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	h := Empty[string]()
	if h.HasValue() || h.Value() != "" {
		t.Fatalf("expected an empty hold, got: has=%v, val=%q", h.HasValue(), h.Value())
	}
}

func TestOwn_FreshIdentityPerHold(t *testing.T) {
	t.Parallel()
	a := Own(1)
	b := Own(1)
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids for distinct holds")
	}
}
