// Package compose drives structured, field-by-field construction of a
// composite value inside a single slot.
//
// # Overview
//
// A Descriptor is static metadata for one composite type: the ordered list
// of participating fields, each with its offset, size, alignment, and a
// plain-or-pinned tag. Sequence pairs a Descriptor with one initializer per
// field and yields a single slot.Init for the whole composite.
//
// Declared field order is both the construction order and, on failure, the
// reverse destruction order: when field k's initializer fails, fields
// k-1 … 1 are destroyed in that order, exactly once each, and fields after
// k are never touched. The rollback ledger is explicit (see guard.go)
// rather than relying on scope-exit ordering, because only the
// actually-completed prefix may be destroyed.
//
// # Building a Descriptor
//
//	type mutex struct {
//	    state   uint32
//	    waiters waitList
//	}
//
//	desc, err := compose.Describe[mutex]().
//	    Plain("state").
//	    Pinned("waiters").
//	    Build()
//
// Offsets and sizes come from reflection over the composite type; the
// builder rejects unknown fields, duplicates, and out-of-declaration-order
// listings.
//
// # Sequencing
//
//	in, err := compose.Sequence[mutex](desc,
//	    compose.Use("state", slot.FromValue(uint32(0))),
//	    compose.Use("waiters", waitListInit),
//	)
//
// A pinned field requires a pin-flavored initializer, and its presence makes
// the composite's initializer pin-flavored too: the address guarantee
// propagates outward, never inward.
//
// # Thread Safety
//
// Descriptors are immutable after Build and safe to share. A sequenced
// initializer is single-use, like every slot.Init.
package compose
