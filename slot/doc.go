// Package slot implements in-place, fallible construction of values inside
// caller-supplied raw memory.
//
// # Overview
//
// Some values cannot be built on a temporary frame and moved into place:
// they are too large, or their internal state (interior pointers, wait-queue
// links) depends on the address they occupy. This package separates "where a
// value lives" from "how it is filled in": a Slot is a view over raw,
// dead, correctly-sized-and-aligned memory, and an Init describes a
// single-use, deferred action that either fully populates the Slot or fails
// with an error, leaving the bytes safely discardable.
//
// # Key Types
//
//   - Slot: raw region view (address, size, alignment fixed at acquisition)
//   - Init: single-use fallible initializer for one value of type T
//   - Dropper: optional interface a value implements to release resources
//     before its memory is discarded
//
// # Construction Mechanisms
//
// In increasing power and decreasing safety:
//
//   - compose.Sequence builds a composite's Init from per-field inits;
//     always safe to use (see the compose package).
//   - MapErr and Validate wrap an existing Init.
//   - FromFunc / FromPinFunc wrap a raw construction closure; the closure
//     takes unchecked responsibility for the slot's bytes.
//   - Zeroed writes an all-zero bit pattern; valid only for types whose
//     zero bit pattern is a legal value. Always succeeds.
//
// # Pinning
//
// A pin-flavored Init (FromPinFunc, or a composite with a pinned field)
// carries the extra guarantee that the target address never changes once
// construction starts. Run refuses to drive a pin-flavored Init against a
// slot that does not make that promise. Addresses are carried as
// unsafe.Pointer, never uintptr, so the runtime can keep them valid.
//
// # Failure Discipline
//
// Every failed Run leaves the slot holding no live value: whatever the
// initializer partially built has already been released, and the caller may
// free or reuse the raw bytes without any Dropper call. Storage strategies
// that acquire slots and wrap finished values in owned handles live in the
// storage and arena packages.
//
// # Thread Safety
//
// A Slot is exclusively owned by whichever Init currently runs against it.
// Nothing in this package synchronizes; construction is strictly sequential.
package slot
