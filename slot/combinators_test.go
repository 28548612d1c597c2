package slot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapErr verifies error rewriting and success passthrough.
func TestMapErr(t *testing.T) {
	wrapped := errors.New("wrapped")

	var v uint64
	failing := FromFunc[uint64](func(Slot) error { return errBoom }).
		MapErr(func(err error) error { return fmt.Errorf("%w: %w", wrapped, err) })

	err := Run(failing, ForValue(&v))
	assert.ErrorIs(t, err, wrapped)
	assert.ErrorIs(t, err, errBoom)

	ok := FromValue(uint64(5)).MapErr(func(err error) error {
		t.Fatal("mapper must not run on success")
		return err
	})
	require.NoError(t, Run(ok, ForValue(&v)))
	assert.Equal(t, uint64(5), v)
}

// TestMapErrPreservesPin verifies combinators keep the pin flavor.
func TestMapErrPreservesPin(t *testing.T) {
	pin := FromPinFunc[int](func(Slot) error { return nil })
	assert.True(t, pin.MapErr(func(e error) error { return e }).Pinned())
	assert.True(t, pin.Validate(func(*int) error { return nil }).Pinned())

	plain := FromFunc[int](func(Slot) error { return nil })
	assert.False(t, plain.MapErr(func(e error) error { return e }).Pinned())
}

type guarded struct {
	value   int
	dropped *int
}

func (g *guarded) Drop() { *g.dropped++ }

// TestValidateAccept verifies the value survives a passing check untouched.
func TestValidateAccept(t *testing.T) {
	drops := 0
	var g guarded
	in := FromValue(guarded{value: 3, dropped: &drops}).
		Validate(func(v *guarded) error {
			if v.value < 0 {
				return errBoom
			}
			return nil
		})

	require.NoError(t, Run(in, ForValue(&g)))
	assert.Equal(t, 3, g.value)
	assert.Zero(t, drops, "accepted value must not be dropped")
}

// TestValidateReject verifies a rejected value is destroyed exactly once
// before the error propagates.
func TestValidateReject(t *testing.T) {
	drops := 0
	var g guarded
	in := FromValue(guarded{value: -1, dropped: &drops}).
		Validate(func(v *guarded) error {
			if v.value < 0 {
				return errBoom
			}
			return nil
		})

	err := Run(in, ForValue(&g))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, drops, "rejected value must be dropped exactly once")
}

// TestValidateSkippedOnConstructionFailure verifies the check never sees a
// value whose construction already failed.
func TestValidateSkippedOnConstructionFailure(t *testing.T) {
	drops := 0
	var g guarded
	in := FromFunc[guarded](func(Slot) error { return errBoom }).
		Validate(func(*guarded) error {
			t.Fatal("check must not run after failed construction")
			return nil
		})

	assert.ErrorIs(t, Run(in, ForValue(&g)), errBoom)
	assert.Zero(t, drops)
}
