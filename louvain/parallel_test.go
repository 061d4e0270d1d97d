package louvain

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelFor_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 5000
	var seen [n]atomic.Int32

	err := parallelFor(context.Background(), n, 8, 16, func(_, v int) error {
		seen[v].Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf(`parallelFor: %v`, err)
	}
	for v, c := range seen {
		if c.Load() != 1 {
			t.Fatalf(`index %d visited %d times, want 1`, v, c.Load())
		}
	}
}

func TestParallelFor_PropagatesBodyError(t *testing.T) {
	wantErr := errors.New(`boom`)
	err := parallelFor(context.Background(), 100, 4, 8, func(_, v int) error {
		if v == 42 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf(`expected %v, got %v`, wantErr, err)
	}
}

func TestParallelFor_EmptyRange(t *testing.T) {
	called := false
	if err := parallelFor(context.Background(), 0, 4, 8, func(_, _ int) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf(`parallelFor: %v`, err)
	}
	if called {
		t.Fatal(`expected body never called for n == 0`)
	}
}
