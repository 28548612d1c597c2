package slot

import "errors"

var (
	// ErrNilInit indicates a zero-value Init with no construction function.
	ErrNilInit = errors.New("slot: nil initializer")

	// ErrInitReused indicates a second Run on a single-use initializer.
	ErrInitReused = errors.New("slot: initializer already consumed")

	// ErrUnpinnedSlot indicates a pin-flavored initializer was run against a
	// slot that does not guarantee a fixed address.
	ErrUnpinnedSlot = errors.New("slot: pin initializer requires a pinned slot")

	// ErrOutOfRange indicates a field range that falls outside the slot.
	ErrOutOfRange = errors.New("slot: field range outside slot")

	// ErrBadAlign indicates a misaligned address or a non-power-of-two
	// alignment request.
	ErrBadAlign = errors.New("slot: bad alignment")

	// ErrSizeMismatch indicates the slot is too small for the value type.
	ErrSizeMismatch = errors.New("slot: slot too small for value")
)
