// Package mempage hands out whole, page-aligned memory regions for arena
// storage. On unix the regions are anonymous private mappings; elsewhere a
// page-aligned heap fallback is used.
package mempage

import (
	"os"
	"unsafe"
)

var pageSize = os.Getpagesize()

// Size returns the system page size.
func Size() int {
	return pageSize
}

// pageOffset returns the distance from &b[0] to the next page boundary.
func pageOffset(b []byte) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	rem := int(addr) & (pageSize - 1)
	if rem == 0 {
		return 0
	}
	return pageSize - rem
}
