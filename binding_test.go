package ratingbar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBindingSetNotifies(t *testing.T) {
	b := NewBinding(1)
	var got []float64
	b.Observe(func(v float64) { got = append(got, v) })

	if !b.Set(2) {
		t.Error("Set(2) should report a change")
	}
	if b.Set(2) {
		t.Error("Set with the same value should be a no-op")
	}
	b.Set(3.5)

	if diff := cmp.Diff([]float64{2, 3.5}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
	if b.Get() != 3.5 {
		t.Errorf("Get = %v, want 3.5", b.Get())
	}
}

func TestBindingObserverOrder(t *testing.T) {
	b := NewBinding(0)
	var order []string
	b.Observe(func(float64) { order = append(order, "a") })
	b.Observe(func(float64) { order = append(order, "b") })
	b.Set(1)
	if diff := cmp.Diff([]string{"a", "b"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingNestedSetSupersedes(t *testing.T) {
	b := NewBinding(0)
	var first, second []float64
	b.Observe(func(v float64) {
		first = append(first, v)
		if v > 5 {
			b.Set(5) // clamp
		}
	})
	b.Observe(func(v float64) { second = append(second, v) })

	b.Set(7)

	if b.Get() != 5 {
		t.Errorf("Get = %v, want 5", b.Get())
	}
	if diff := cmp.Diff([]float64{7, 5}, first); diff != "" {
		t.Errorf("first observer (-want +got):\n%s", diff)
	}
	// The stale 7 never reaches the second observer.
	if diff := cmp.Diff([]float64{5}, second); diff != "" {
		t.Errorf("second observer (-want +got):\n%s", diff)
	}
}

func TestBindingRemove(t *testing.T) {
	b := NewBinding(0)
	calls := 0
	h := b.Observe(func(float64) { calls++ })
	other := b.Observe(func(float64) {})
	if b.NumObservers() != 2 {
		t.Fatalf("NumObservers = %d, want 2", b.NumObservers())
	}

	h.Remove()
	h.Remove() // second call is harmless
	b.Set(1)
	if calls != 0 {
		t.Errorf("removed observer called %d times", calls)
	}
	if b.NumObservers() != 1 {
		t.Errorf("NumObservers = %d, want 1", b.NumObservers())
	}
	other.Remove()
	if b.NumObservers() != 0 {
		t.Errorf("NumObservers = %d, want 0", b.NumObservers())
	}
}

func TestCallbackHandleZero(t *testing.T) {
	var h CallbackHandle
	h.Remove() // no panic
}

func TestBindingObserverRemovesItself(t *testing.T) {
	b := NewBinding(0)
	var h CallbackHandle
	var second []float64
	h = b.Observe(func(float64) { h.Remove() })
	b.Observe(func(v float64) { second = append(second, v) })

	b.Set(1)
	b.Set(2)
	if diff := cmp.Diff([]float64{1, 2}, second); diff != "" {
		t.Errorf("second observer (-want +got):\n%s", diff)
	}
	if b.NumObservers() != 1 {
		t.Errorf("NumObservers = %d, want 1", b.NumObservers())
	}
}

func TestBindingObserverRemovesLaterOne(t *testing.T) {
	b := NewBinding(0)
	var later CallbackHandle
	calls := 0
	b.Observe(func(float64) { later.Remove() })
	later = b.Observe(func(float64) { calls++ })

	b.Set(1)
	if calls != 0 {
		t.Errorf("removed observer called %d times", calls)
	}
}

func TestBindingObserverAddedDuringSet(t *testing.T) {
	b := NewBinding(0)
	var late []float64
	added := false
	b.Observe(func(float64) {
		if !added {
			added = true
			b.Observe(func(v float64) { late = append(late, v) })
		}
	})

	b.Set(1)
	b.Set(2)
	if diff := cmp.Diff([]float64{2}, late); diff != "" {
		t.Errorf("late observer (-want +got):\n%s", diff)
	}
}

func TestBindingNaNSetOnce(t *testing.T) {
	b := NewBinding(math.NaN())
	calls := 0
	b.Observe(func(float64) { calls++ })
	if b.Set(math.NaN()) {
		t.Error("NaN over NaN should be a no-op")
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}
