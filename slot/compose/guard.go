package compose

import "unsafe"

// partialInitGuard is the rollback ledger for one composite construction.
// It records how many fields of the descriptor have completed, in declared
// order. On abnormal termination rollback destroys exactly that prefix, in
// reverse order, then the guard goes inert. Completing every field defuses
// the guard: ownership of the fields has passed to the now-valid composite.
type partialInitGuard struct {
	d       *Descriptor
	base    unsafe.Pointer
	done    int
	defused bool
}

func newGuard(d *Descriptor, base unsafe.Pointer) *partialInitGuard {
	return &partialInitGuard{d: d, base: base}
}

// markDone records that the next field in declared order is fully
// constructed and now owned by the guard.
func (g *partialInitGuard) markDone() {
	g.done++
}

// defuse transfers ownership of all completed fields to the composite.
// A defused guard's rollback is a no-op.
func (g *partialInitGuard) defuse() {
	g.defused = true
}

// rollback destroys the completed prefix in reverse declared order, exactly
// once per field, then leaves the guard inert.
func (g *partialInitGuard) rollback() {
	if g.defused {
		return
	}
	for i := g.done - 1; i >= 0; i-- {
		g.d.dropField(i, g.base)
	}
	g.done = 0
}
