package storage

import (
	"github.com/joshuapare/slotkit/slot"
)

// StackSlot is bounded automatic storage for one T. The zero value is ready
// to use; the memory is the embedded field, so it is reserved for the
// enclosing scope's whole duration with no heap traffic.
//
// After a successful Emplace the StackSlot must not be copied: the
// constructed value's address is its identity. Arrange for Drop to run when
// the scope ends, typically:
//
//	var s storage.StackSlot[waitQueue]
//	defer s.Drop()
//	wq, err := s.Emplace(waitQueueInit)
//
// Drop after a failed (or absent) Emplace is a no-op — unconstructed bytes
// are never dropped.
type StackSlot[T any] struct {
	mem  T
	live bool
}

// Emplace runs in against the embedded storage and, on success, returns the
// constructed value at its final, scope-stable address.
//
// On failure the storage stays empty (the bytes need no cleanup, per the
// initializer contract) and a later Emplace may reuse it.
func (s *StackSlot[T]) Emplace(in slot.Init[T]) (*T, error) {
	if s.live {
		return nil, ErrOccupied
	}
	if err := slot.Run(in, slot.ForValue(&s.mem)); err != nil {
		return nil, err
	}
	s.live = true
	return &s.mem, nil
}

// Get returns the constructed value, or false when the slot is empty.
func (s *StackSlot[T]) Get() (*T, bool) {
	if !s.live {
		return nil, false
	}
	return &s.mem, true
}

// Drop destroys the constructed value, if any, exactly once. The storage
// becomes reusable afterwards; the zero pattern is restored so a later
// Emplace starts from dead bytes.
func (s *StackSlot[T]) Drop() {
	if !s.live {
		return
	}
	slot.DropInPlace(&s.mem)
	var zero T
	s.mem = zero
	s.live = false
}
