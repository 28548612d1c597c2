package storage

import (
	"github.com/joshuapare/slotkit/slot"
)

// Box is a unique owning handle to a heap-constructed T at a fixed address.
type Box[T any] struct {
	p *T
}

// NewBox allocates heap storage for one T and runs in against it.
//
// On success the returned Box uniquely owns the value; Go's heap never
// relocates it, so pin-flavored initializers are satisfied for the handle's
// whole life. On failure the raw allocation is surrendered to the collector
// with no Dropper call and the initializer's error is returned.
func NewBox[T any](in slot.Init[T]) (*Box[T], error) {
	p := new(T)
	if err := slot.Run(in, slot.ForValue(p)); err != nil {
		return nil, err
	}
	return &Box[T]{p: p}, nil
}

// Get returns the owned value, or nil after Drop.
func (b *Box[T]) Get() *T {
	return b.p
}

// Drop destroys the owned value exactly once and releases the handle.
// Further Drops are no-ops; Get returns nil afterwards.
func (b *Box[T]) Drop() {
	if b.p == nil {
		return
	}
	slot.DropInPlace(b.p)
	b.p = nil
}
