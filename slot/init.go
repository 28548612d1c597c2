package slot

import "unsafe"

// Dropper releases resources owned by a value before its memory is
// discarded. Values that own nothing simply don't implement it.
//
// During rollback of a partially-built composite, each completed field's
// Dropper runs exactly once, in reverse declared order. After a fully
// successful construction the owning handle's Drop invokes the value's own
// Dropper instead.
type Dropper interface {
	Drop()
}

// DropInPlace runs *p's Dropper, if it has one. The memory still holds the
// (now released) value afterwards; the caller is expected to discard it.
func DropInPlace[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}
}

// Init is a single-use, deferred construction of one T inside a Slot.
//
// Contract, enforced or assumed by Run:
//
//   - at most one invocation per Init (a second Run returns ErrInitReused)
//   - on nil return, every byte of the slot holds a valid T
//   - on error return, nothing in the slot requires a Dropper call; the raw
//     bytes may be discarded or reused directly
//
// A pin-flavored Init (Pinned reports true) additionally promises that the
// slot's address never changes once construction starts, for as long as the
// constructed value lives.
//
// The zero value is not runnable; build Inits with FromFunc, FromPinFunc,
// FromValue, Zeroed, or compose.Sequence.
type Init[T any] struct {
	run  func(Slot) error
	pin  bool
	used *bool
}

// FromFunc wraps a raw construction closure as an Init.
//
// This is the unchecked escape hatch for foreign or primitive resources that
// can't be expressed compositionally. By calling FromFunc the caller accepts
// sole responsibility for the closure's contract:
//
//   - returning nil means every byte of the slot is a valid T
//   - returning an error means the closure has already destroyed or released
//     anything it partially constructed, leaving the bytes discardable
//
// Nothing at runtime detects a violation; the consequences are undefined.
func FromFunc[T any](fn func(Slot) error) Init[T] {
	return Init[T]{run: fn, used: new(bool)}
}

// FromPinFunc is FromFunc for address-dependent construction. On top of the
// FromFunc contract, the closure may record the slot's address inside the
// value: the resulting Init only runs against pinned slots.
func FromPinFunc[T any](fn func(Slot) error) Init[T] {
	return Init[T]{run: fn, pin: true, used: new(bool)}
}

// FromValue returns an Init that moves an already-constructed value into the
// slot. It always succeeds; ownership of v's resources passes to the slot.
func FromValue[T any](v T) Init[T] {
	return FromFunc[T](func(s Slot) error {
		return Write(s, 0, v)
	})
}

// Zeroed returns an Init that fills the slot with zero bytes and always
// succeeds. Valid only for types whose all-zero bit pattern is a legal
// value.
func Zeroed[T any]() Init[T] {
	return FromFunc[T](func(s Slot) error {
		s.Zero()
		return nil
	})
}

// Pinned reports whether this Init carries the fixed-address guarantee.
func (in Init[T]) Pinned() bool { return in.pin }

// Run drives in against s, consuming in.
//
// On nil, s holds a valid T and ownership passes to the caller's handle. On
// error, s holds no live value and its bytes may be freed without a Dropper
// call. Checks performed before the initializer sees the slot: single-use,
// pin compatibility, and that s fits a T.
func Run[T any](in Init[T], s Slot) error {
	if in.run == nil {
		return ErrNilInit
	}
	if *in.used {
		return ErrInitReused
	}
	if in.pin && !s.pinned {
		return ErrUnpinnedSlot
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > s.size {
		return ErrSizeMismatch
	}
	*in.used = true
	return in.run(s)
}
