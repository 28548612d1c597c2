package arena

import "errors"

var (
	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("arena: closed")

	// ErrNoSpace indicates the reservation cannot fit under the MaxPages cap.
	ErrNoSpace = errors.New("arena: page cap reached")

	// ErrGrowFail indicates the operating system refused a new block mapping.
	ErrGrowFail = errors.New("arena: grow failed")

	// ErrPointerType indicates an attempt to place a type containing Go
	// pointers, which the collector could not see inside an arena block.
	ErrPointerType = errors.New("arena: type contains Go pointers")

	// ErrBadSize indicates a zero-sized reservation.
	ErrBadSize = errors.New("arena: zero-sized reservation")

	// ErrBadAlign indicates a non-power-of-two alignment or one exceeding
	// the page size.
	ErrBadAlign = errors.New("arena: bad alignment")
)
