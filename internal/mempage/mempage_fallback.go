//go:build !unix

package mempage

import "fmt"

// Alloc returns n bytes of zero-filled, page-aligned memory.
//
// Fallback for platforms without anonymous mmap: the region comes from the
// Go heap, over-allocated by one page and sliced to a page boundary. Heap
// objects never move, so addresses stay stable while the region is
// referenced, but the region is collector-visible.
func Alloc(n int) ([]byte, error) {
	if n <= 0 || n%Size() != 0 {
		return nil, fmt.Errorf("mempage: bad region size %d (page size %d)", n, Size())
	}
	raw := make([]byte, n+Size())
	off := pageOffset(raw)
	return raw[off : off+n : off+n], nil
}

// Free releases a region returned by Alloc. On the heap fallback this is a
// no-op; the collector reclaims the region once unreferenced.
func Free(data []byte) error {
	return nil
}
