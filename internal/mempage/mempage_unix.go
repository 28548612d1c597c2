//go:build unix

package mempage

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps n bytes of anonymous, zero-filled, page-aligned memory.
// n must be a positive multiple of Size().
//
// The returned region is outside the Go heap: the collector never moves or
// scans it, so addresses within it are stable until Free.
func Alloc(n int) ([]byte, error) {
	if n <= 0 || n%Size() != 0 {
		return nil, fmt.Errorf("mempage: bad region size %d (page size %d)", n, Size())
	}
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mempage: mmap %d bytes: %w", n, err)
	}
	return data, nil
}

// Free unmaps a region returned by Alloc.
func Free(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}
