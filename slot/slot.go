package slot

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slotkit/internal/align"
)

// Slot is a view over raw, uninitialized storage for a single value.
// Address, size and alignment are fixed at acquisition. A slot holds no
// valid value until an Init reports success against it; until then the
// region must not be read as a value of the target type.
//
// A pinned slot additionally promises that the region's address never
// changes for as long as the constructed value lives.
type Slot struct {
	base   unsafe.Pointer
	size   uintptr
	align  uintptr
	pinned bool
}

// FromPointer wraps an existing raw region in a Slot.
//
// The caller asserts that p points to at least size writable bytes, aligned
// to al, holding no live value. Set pinned only when the region's address is
// guaranteed stable for the constructed value's whole life.
func FromPointer(p unsafe.Pointer, size, al uintptr, pinned bool) (Slot, error) {
	if !align.IsPow2(al) {
		return Slot{}, fmt.Errorf("%w: alignment %d not a power of two", ErrBadAlign, al)
	}
	if p == nil && size > 0 {
		return Slot{}, fmt.Errorf("slot: nil base for %d-byte region", size)
	}
	if !align.IsAligned(uintptr(p), al) {
		return Slot{}, fmt.Errorf("%w: base %p not %d-byte aligned", ErrBadAlign, p, al)
	}
	return Slot{base: p, size: size, align: al, pinned: pinned}, nil
}

// ForValue returns a pinned Slot covering p's memory.
//
// The caller asserts the memory holds no live value (a freshly-allocated or
// zeroed T) and that *p is never copied while the constructed value lives.
func ForValue[T any](p *T) Slot {
	var zero T
	return Slot{
		base:   unsafe.Pointer(p),
		size:   unsafe.Sizeof(zero),
		align:  unsafe.Alignof(zero),
		pinned: true,
	}
}

// Base returns the region's starting address. Usable to compute field
// addresses without forming a reference to the uninitialized value.
func (s Slot) Base() unsafe.Pointer { return s.base }

// Size returns the region size in bytes.
func (s Slot) Size() uintptr { return s.size }

// Align returns the region's guaranteed alignment.
func (s Slot) Align() uintptr { return s.align }

// Pinned reports whether the region's address is guaranteed stable.
func (s Slot) Pinned() bool { return s.pinned }

// Bytes returns the raw region. The bytes are not a valid value until
// initialization completes; writes through the slice bypass every check this
// package performs.
func (s Slot) Bytes() []byte {
	if s.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(s.base), s.size)
}

// Zero writes zero bytes across the whole region.
func (s Slot) Zero() {
	if s.size > 0 {
		clear(unsafe.Slice((*byte)(s.base), s.size))
	}
}

// Field returns a plain sub-slot at off covering size bytes aligned to al.
// The sub-slot does not carry the pin guarantee even when s does; use
// PinField for structurally pinned fields.
func (s Slot) Field(off, size, al uintptr) (Slot, error) {
	return s.sub(off, size, al, false)
}

// PinField returns a pin-carrying sub-slot at off. The parent slot must be
// pinned: the guarantee propagates outward, never inward.
func (s Slot) PinField(off, size, al uintptr) (Slot, error) {
	if !s.pinned {
		return Slot{}, fmt.Errorf("%w: pinned field at offset %d", ErrUnpinnedSlot, off)
	}
	return s.sub(off, size, al, true)
}

func (s Slot) sub(off, size, al uintptr, pinned bool) (Slot, error) {
	if !align.IsPow2(al) {
		return Slot{}, fmt.Errorf("%w: alignment %d not a power of two", ErrBadAlign, al)
	}
	end, ok := align.AddOverflowSafe(off, size)
	if !ok || end > s.size {
		return Slot{}, fmt.Errorf("%w: [%d, %d+%d) in %d-byte slot", ErrOutOfRange, off, off, size, s.size)
	}
	if !align.IsAligned(uintptr(s.base)+off, al) {
		return Slot{}, fmt.Errorf("%w: offset %d breaks %d-byte alignment", ErrBadAlign, off, al)
	}
	return Slot{base: unsafe.Add(s.base, off), size: size, align: al, pinned: pinned}, nil
}

// Write moves a fully-constructed field value into the region at off.
// Bounds and alignment are checked against F's layout.
func Write[F any](s Slot, off uintptr, v F) error {
	size := unsafe.Sizeof(v)
	end, ok := align.AddOverflowSafe(off, size)
	if !ok || end > s.size {
		return fmt.Errorf("%w: write [%d, %d+%d) in %d-byte slot", ErrOutOfRange, off, off, size, s.size)
	}
	if al := unsafe.Alignof(v); !align.IsAligned(uintptr(s.base)+off, al) {
		return fmt.Errorf("%w: write at offset %d needs %d-byte alignment", ErrBadAlign, off, al)
	}
	*(*F)(unsafe.Add(s.base, off)) = v
	return nil
}

// View returns the region as a *T. Only meaningful once initialization has
// been reported complete; callers outside this module normally receive the
// typed handle from a storage adapter instead.
func View[T any](s Slot) (*T, error) {
	var zero T
	if unsafe.Sizeof(zero) > s.size {
		return nil, fmt.Errorf("%w: need %d bytes, slot has %d", ErrSizeMismatch, unsafe.Sizeof(zero), s.size)
	}
	if al := unsafe.Alignof(zero); !align.IsAligned(uintptr(s.base), al) {
		return nil, fmt.Errorf("%w: base %p needs %d-byte alignment", ErrBadAlign, s.base, al)
	}
	return (*T)(s.base), nil
}
