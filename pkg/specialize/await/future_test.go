package await

import (
	"context"
	"errors"
	"testing"
)

func TestGo_ResolvesWithResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(ctx, func(ctx context.Context) (int, error) { return 21 * 2, nil })

	v, err := f.Await(ctx)
	if err != nil || v != 42 {
		t.Fatalf("expected 42, got: val=%v, err=%v", v, err)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Ready("now")
	if !f.Resolved() {
		t.Fatalf("expected a ready future to be resolved")
	}

	v, err := f.Await(ctx)
	if err != nil || v != "now" {
		t.Fatalf("expected now, got: val=%q, err=%v", v, err)
	}
}

func TestReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	f := Reject[int](boom)

	_, err := f.Await(ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
}

func TestAwait_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	f := Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	cancel()
	_, err := f.Await(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestAwait_MultipleAwaiters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(ctx, func(ctx context.Context) (int, error) { return 5, nil })

	for i := 0; i < 3; i++ {
		v, err := f.Await(ctx)
		if err != nil || v != 5 {
			t.Fatalf("expected 5 on every await, got: val=%v, err=%v", v, err)
		}
	}
}
