package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBox verifies unique heap construction and handle behavior.
func TestNewBox(t *testing.T) {
	drops := 0
	b, err := NewBox(resourceInit(11, &drops))
	require.NoError(t, err)

	v := b.Get()
	require.NotNil(t, v)
	assert.Equal(t, 11, v.id)
	assert.Same(t, v, b.Get(), "address is fixed for the handle's life")
}

// TestNewBoxFailure verifies failure frees nothing through a Dropper.
func TestNewBoxFailure(t *testing.T) {
	b, err := NewBox(failingInit[resource]())
	assert.ErrorIs(t, err, errInit)
	assert.Nil(t, b)
}

// TestBoxDropOnce verifies exactly-once destruction.
func TestBoxDropOnce(t *testing.T) {
	drops := 0
	b, err := NewBox(resourceInit(1, &drops))
	require.NoError(t, err)

	b.Drop()
	assert.Equal(t, 1, drops)
	assert.Nil(t, b.Get())

	b.Drop()
	assert.Equal(t, 1, drops, "second Drop is a no-op")
}

// TestBoxPinned verifies heap storage satisfies pin-flavored initializers.
func TestBoxPinned(t *testing.T) {
	b, err := NewBox(ptrRingInit())
	require.NoError(t, err)
	defer b.Drop()

	r := b.Get()
	assert.Same(t, &r.buf[0], r.head)
	assert.Same(t, &r.buf[3], r.tail)
}
