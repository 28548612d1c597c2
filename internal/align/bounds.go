package align

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow uintptr. Used for offset + size calculations before indexing into
// a slot's region.
func AddOverflowSafe(a, b uintptr) (uintptr, bool) {
	if a > ^uintptr(0)-b {
		return 0, false
	}
	return a + b, true
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow uintptr. Used for count * pageSize calculations before
// requesting a mapping.
func MulOverflowSafe(a, b uintptr) (uintptr, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > ^uintptr(0)/b {
		return 0, false
	}
	return a * b, true
}
