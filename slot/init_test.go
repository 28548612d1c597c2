package slot

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// TestRunFillsSlot verifies the basic success path.
func TestRunFillsSlot(t *testing.T) {
	var v uint64
	in := FromFunc[uint64](func(s Slot) error {
		return Write(s, 0, uint64(99))
	})

	require.NoError(t, Run(in, ForValue(&v)))
	assert.Equal(t, uint64(99), v)
}

// TestRunSingleUse verifies an initializer is consumed by its first Run.
func TestRunSingleUse(t *testing.T) {
	var v uint64
	calls := 0
	in := FromFunc[uint64](func(s Slot) error {
		calls++
		return nil
	})

	require.NoError(t, Run(in, ForValue(&v)))
	err := Run(in, ForValue(&v))
	assert.ErrorIs(t, err, ErrInitReused)
	assert.Equal(t, 1, calls, "construction function must run at most once")
}

// TestRunFailedInitNotConsumedByChecks verifies precondition failures do not
// spend the initializer.
func TestRunFailedInitNotConsumedByChecks(t *testing.T) {
	var v uint64
	in := FromPinFunc[uint64](func(s Slot) error { return nil })

	plain, err := ForValue(&v).Field(0, unsafe.Sizeof(v), unsafe.Alignof(v))
	require.NoError(t, err)

	err = Run(in, plain)
	require.ErrorIs(t, err, ErrUnpinnedSlot)

	// Same initializer still runs fine against a pinned slot.
	require.NoError(t, Run(in, ForValue(&v)))
}

// TestRunZeroValueInit verifies the zero-value Init is rejected.
func TestRunZeroValueInit(t *testing.T) {
	var v uint64
	var in Init[uint64]
	assert.ErrorIs(t, Run(in, ForValue(&v)), ErrNilInit)
}

// TestRunSlotTooSmall verifies size checking before construction starts.
func TestRunSlotTooSmall(t *testing.T) {
	var v uint32
	ran := false
	in := FromFunc[uint64](func(s Slot) error {
		ran = true
		return nil
	})

	err := Run(in, ForValue(&v))
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.False(t, ran, "construction function must not see an undersized slot")
}

// TestRunPropagatesError verifies typed failure reaches the caller.
func TestRunPropagatesError(t *testing.T) {
	var v uint64
	in := FromFunc[uint64](func(s Slot) error { return errBoom })
	assert.ErrorIs(t, Run(in, ForValue(&v)), errBoom)
}

// TestFromValue verifies moving a ready value into place.
func TestFromValue(t *testing.T) {
	var p pair
	require.NoError(t, Run(FromValue(pair{A: 1, B: 2}), ForValue(&p)))
	assert.Equal(t, pair{A: 1, B: 2}, p)
}

// TestZeroed verifies the all-zero initializer writes exactly the slot's
// span and always succeeds.
func TestZeroed(t *testing.T) {
	var buf [32]byte
	for i := range buf {
		buf[i] = 0xFF
	}

	require.NoError(t, Run(Zeroed[[32]byte](), ForValue(&buf)))
	for i, b := range buf {
		require.Zerof(t, b, "byte %d after Zeroed", i)
	}
}

// TestPinnedFlavor verifies the pin flag on constructors.
func TestPinnedFlavor(t *testing.T) {
	assert.False(t, FromFunc[int](func(Slot) error { return nil }).Pinned())
	assert.True(t, FromPinFunc[int](func(Slot) error { return nil }).Pinned())
	assert.False(t, Zeroed[int]().Pinned())
	assert.False(t, FromValue(0).Pinned())
}

type dropFlag struct {
	dropped *int
}

func (d *dropFlag) Drop() { *d.dropped++ }

// TestDropInPlace verifies Dropper dispatch, including the no-Dropper case.
func TestDropInPlace(t *testing.T) {
	n := 0
	d := dropFlag{dropped: &n}
	DropInPlace(&d)
	assert.Equal(t, 1, n)

	var plain uint64
	DropInPlace(&plain) // no Dropper: no-op
}
