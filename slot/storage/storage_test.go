package storage

import (
	"errors"

	"github.com/joshuapare/slotkit/slot"
)

var errInit = errors.New("init failed")

// resource counts its drops so tests can assert exactly-once destruction.
type resource struct {
	id    int
	drops *int
}

func (r *resource) Drop() { *r.drops++ }

func resourceInit(id int, drops *int) slot.Init[resource] {
	return slot.FromValue(resource{id: id, drops: drops})
}

func failingInit[T any]() slot.Init[T] {
	return slot.FromFunc[T](func(slot.Slot) error { return errInit })
}

// ptrRing is an address-dependent type: head and tail point into its own
// buffer, so it can only be built in place by a pin-flavored initializer.
type ptrRing struct {
	buf  [4]uint64
	head *uint64
	tail *uint64
}

func ptrRingInit() slot.Init[ptrRing] {
	return slot.FromPinFunc[ptrRing](func(s slot.Slot) error {
		v, err := slot.View[ptrRing](s)
		if err != nil {
			return err
		}
		for i := range v.buf {
			v.buf[i] = uint64(i + 1)
		}
		v.head = &v.buf[0]
		v.tail = &v.buf[len(v.buf)-1]
		return nil
	})
}
