package storage

import (
	"sync/atomic"

	"github.com/joshuapare/slotkit/slot"
)

// Arc is a shared, reference-counted owning handle to a heap-constructed T.
// The value's address stays fixed as long as any reference exists, so
// pin-flavored initializers are satisfied even under sharing.
//
// Each Arc value owns one reference: Clone takes a new one, Drop releases
// it. The value's Dropper runs exactly once, when the last reference goes.
// Counting is atomic; the constructed value's own thread-safety is its own
// concern.
type Arc[T any] struct {
	s *arcShared[T]
}

type arcShared[T any] struct {
	refs atomic.Int64
	val  T
}

// NewArc allocates shared storage for one T plus its reference count and
// runs in against the value's region. Failure surrenders the raw allocation
// with no Dropper call.
func NewArc[T any](in slot.Init[T]) (Arc[T], error) {
	s := &arcShared[T]{}
	if err := slot.Run(in, slot.ForValue(&s.val)); err != nil {
		return Arc[T]{}, err
	}
	s.refs.Store(1)
	return Arc[T]{s: s}, nil
}

// Clone returns a new handle owning a fresh reference to the same value.
func (a Arc[T]) Clone() Arc[T] {
	if a.s != nil {
		a.s.refs.Add(1)
	}
	return Arc[T]{s: a.s}
}

// Get returns the shared value, or nil for a zero or fully-released handle.
func (a Arc[T]) Get() *T {
	if a.s == nil || a.s.refs.Load() <= 0 {
		return nil
	}
	return &a.s.val
}

// Refs returns the current reference count. Zero-value handles report 0.
func (a Arc[T]) Refs() int64 {
	if a.s == nil {
		return 0
	}
	return a.s.refs.Load()
}

// Drop releases this handle's reference. When the count reaches zero the
// value's Dropper runs and the storage is surrendered to the collector.
// Dropping a zero-value handle is a no-op.
func (a Arc[T]) Drop() {
	if a.s == nil || a.s.refs.Load() <= 0 {
		return
	}
	if a.s.refs.Add(-1) == 0 {
		slot.DropInPlace(&a.s.val)
	}
}
