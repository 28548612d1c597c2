package arena

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/slotkit/internal/align"
	"github.com/joshuapare/slotkit/internal/mempage"
	"github.com/joshuapare/slotkit/slot"
)

// Options configures an Arena.
type Options struct {
	// InitialPages is how many pages the first block maps. Minimum 1.
	InitialPages int

	// MaxPages caps the total pages the arena may ever map. 0 means no cap.
	MaxPages int
}

// DefaultOptions returns the configuration used when New is given nil:
// one initial page, no growth cap.
func DefaultOptions() *Options {
	return &Options{
		InitialPages: 1,
		MaxPages:     0,
	}
}

// Arena is append-only bump storage over page-aligned blocks.
type Arena struct {
	opts   Options
	blocks [][]byte
	off    uintptr // bump offset within the active (last) block
	pages  int     // total pages mapped
	placed int     // successful placements
	wasted uintptr // bytes abandoned at block tails
	closed bool
}

// New maps the initial block and returns a ready arena.
// opts == nil uses DefaultOptions.
func New(opts *Options) (*Arena, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	cfg := *opts
	if cfg.InitialPages < 1 {
		cfg.InitialPages = 1
	}
	if cfg.MaxPages > 0 && cfg.InitialPages > cfg.MaxPages {
		return nil, fmt.Errorf("%w: initial %d pages over cap %d", ErrNoSpace, cfg.InitialPages, cfg.MaxPages)
	}

	a := &Arena{opts: cfg}
	if err := a.grow(cfg.InitialPages); err != nil {
		return nil, err
	}
	return a, nil
}

// Reserve bump-allocates a pinned slot of size bytes aligned to al.
//
// When the active block cannot fit the request the arena maps a new block
// of enough whole pages, subject to MaxPages. On ErrNoSpace nothing has
// been reserved and no initializer has run.
func (a *Arena) Reserve(size, al uintptr) (slot.Slot, error) {
	if a.closed {
		return slot.Slot{}, ErrClosed
	}
	if size == 0 {
		return slot.Slot{}, ErrBadSize
	}
	if !align.IsPow2(al) || al > uintptr(mempage.Size()) {
		return slot.Slot{}, fmt.Errorf("%w: %d", ErrBadAlign, al)
	}

	cur := a.blocks[len(a.blocks)-1]
	start := align.Up(a.off, al)
	end, ok := align.AddOverflowSafe(start, size)
	if !ok {
		return slot.Slot{}, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
	}
	if end > uintptr(len(cur)) {
		// Block base addresses are page-aligned, so offset zero satisfies
		// any permitted alignment in the fresh block.
		tail := uintptr(len(cur)) - a.off
		rounded, ok := align.AddOverflowSafe(size, uintptr(mempage.Size())-1)
		if !ok {
			return slot.Slot{}, fmt.Errorf("%w: %d bytes", ErrBadSize, size)
		}
		if err := a.grow(int(rounded / uintptr(mempage.Size()))); err != nil {
			return slot.Slot{}, err
		}
		a.wasted += tail
		cur = a.blocks[len(a.blocks)-1]
		start, end = 0, size
	}

	a.off = end
	return slot.FromPointer(unsafe.Pointer(&cur[start]), size, al, true)
}

// grow maps a fresh block of at least pages whole pages and makes it the
// active block.
func (a *Arena) grow(pages int) error {
	if pages < 1 {
		pages = 1
	}
	if a.opts.MaxPages > 0 && a.pages+pages > a.opts.MaxPages {
		return fmt.Errorf("%w: %d mapped, %d requested, cap %d", ErrNoSpace, a.pages, pages, a.opts.MaxPages)
	}
	nbytes, ok := align.MulOverflowSafe(uintptr(pages), uintptr(mempage.Size()))
	if !ok || int(nbytes) < 0 {
		return fmt.Errorf("%w: %d pages requested", ErrNoSpace, pages)
	}
	block, err := mempage.Alloc(int(nbytes))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGrowFail, err)
	}
	a.blocks = append(a.blocks, block)
	a.pages += pages
	a.off = 0
	return nil
}

// mark captures the bump position so a failed placement can hand its cell
// back when nothing else reserved in between.
type mark struct {
	block int
	off   uintptr
}

func (a *Arena) mark() mark {
	return mark{block: len(a.blocks), off: a.off}
}

// release rewinds to m when the reservation is still the block tail.
// After an intervening grow the cell becomes dead space instead; bump
// storage never reclaims interior cells.
func (a *Arena) release(m mark) {
	if len(a.blocks) == m.block {
		a.off = m.off
	}
}

// Stats describes arena occupancy.
type Stats struct {
	Pages    int     // total pages mapped
	Blocks   int     // blocks mapped
	Reserved uintptr // bytes handed out in the active block
	Wasted   uintptr // bytes abandoned at previous block tails
	Placed   int     // values successfully placed
}

// Stats returns a snapshot of arena occupancy.
func (a *Arena) Stats() Stats {
	return Stats{
		Pages:    a.pages,
		Blocks:   len(a.blocks),
		Reserved: a.off,
		Wasted:   a.wasted,
		Placed:   a.placed,
	}
}

// Close unmaps every block. The caller must have dropped all placed values
// first; their memory disappears with the mapping. Close is idempotent.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	var firstErr error
	for _, b := range a.blocks {
		if err := mempage.Free(b); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.blocks = nil
	return firstErr
}
