// Package arena provides bump-pointer storage for in-place construction,
// backed by whole, page-aligned memory blocks outside the Go heap.
//
// # Overview
//
// An Arena reserves slots with a simple bump pointer: O(1) reservation, no
// per-cell bookkeeping, no reuse. When the active block cannot fit a
// reservation the arena maps a fresh block, abandoning the old block's tail
// as dead space — the classic append-only trade. Growth is capped by
// Options.MaxPages, which makes the arena the one storage source in this
// module whose acquisition genuinely fails: Reserve returns ErrNoSpace and
// the initializer is never invoked.
//
// # Usage
//
//	a, err := arena.New(nil)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	q, err := arena.Place(a, queueInit) // *T inside the arena, pinned
//
// # Constraints
//
// Arena blocks are invisible to the garbage collector, so placed types must
// be pointer-free: no Go pointers, maps, slices, strings, channels, funcs,
// or interfaces anywhere in the type. Place rejects violations with
// ErrPointerType. Addresses are genuinely fixed — nothing ever moves an
// arena block — so every reserved slot carries the pin guarantee.
//
// # Thread Safety
//
// An Arena is not thread-safe. Callers must synchronize access externally.
package arena
