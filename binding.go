package ratingbar

import "math"

// Binding is a float64 shared between a host and one or more bars. Both sides
// read it with Get and write it with Set; observers registered with Observe
// hear about every actual change.
//
// Set is a no-op when the new value equals the current one, so two parties
// that mirror each other's writes settle instead of looping. If an observer
// calls Set while a notification is in flight, the newer value wins: it is
// delivered to every observer and the older notification stops early.
//
// Like the rest of this package, a Binding is not safe for concurrent use.
type Binding struct {
	value     float64
	version   uint64
	observers []*bindingObserver
	nextID    uint32
}

type bindingObserver struct {
	id      uint32
	fn      func(float64)
	removed bool
}

// NewBinding returns a binding holding v.
func NewBinding(v float64) *Binding {
	return &Binding{value: v}
}

// Get returns the current value.
func (b *Binding) Get() float64 {
	return b.value
}

// Set stores v and notifies observers in registration order. Reports whether
// the value changed; NaN counts as equal to NaN.
func (b *Binding) Set(v float64) bool {
	if v == b.value || (math.IsNaN(v) && math.IsNaN(b.value)) {
		return false
	}
	b.value = v
	b.version++
	version := b.version

	// Ranging over the slice header iterates a snapshot: observers added
	// during dispatch wait for the next Set, and removed ones are skipped.
	for _, o := range b.observers {
		if o.removed {
			continue
		}
		o.fn(v)
		if b.version != version {
			// A nested Set already told everyone about a newer value.
			break
		}
	}
	return true
}

// Observe registers fn to be called with each new value. The returned handle
// removes the observer.
func (b *Binding) Observe(fn func(float64)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, &bindingObserver{id: id, fn: fn})
	return CallbackHandle{id: id, remove: b.removeObserver}
}

// NumObservers returns the number of registered observers.
func (b *Binding) NumObservers() int {
	return len(b.observers)
}

func (b *Binding) removeObserver(id uint32) {
	for i, o := range b.observers {
		if o.id != id {
			continue
		}
		o.removed = true
		// Build a new slice so a dispatch in progress keeps its view.
		kept := make([]*bindingObserver, 0, len(b.observers)-1)
		kept = append(kept, b.observers[:i]...)
		b.observers = append(kept, b.observers[i+1:]...)
		return
	}
}

// CallbackHandle allows removing a registered callback, either a binding
// observer or a host-level pointer handler.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters this callback so it no longer fires. Safe to call on a
// zero handle or more than once.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}
