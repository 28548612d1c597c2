package align

// Alignment utilities for slot and arena layout math.
// All alignments handled by this package are powers of two.

// IsPow2 reports whether a is a non-zero power of two.
func IsPow2(a uintptr) bool {
	return a != 0 && a&(a-1) == 0
}

// Up returns n aligned up to the next multiple of a.
// a must be a non-zero power of two.
//
// Example:
//
//	Up(1, 8)  = 8
//	Up(8, 8)  = 8
//	Up(9, 8)  = 16
func Up(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// IsAligned reports whether n is a multiple of a.
// a must be a non-zero power of two.
func IsAligned(n, a uintptr) bool {
	return n&(a-1) == 0
}
