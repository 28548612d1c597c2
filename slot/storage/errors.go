package storage

import "errors"

var (
	// ErrOccupied indicates an Emplace into a StackSlot already holding a
	// live value.
	ErrOccupied = errors.New("storage: slot already holds a value")
)
