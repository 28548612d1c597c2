package compose

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	A uint64
	B uint32
	C [2]uint64
}

// TestDescribeLayout verifies field geometry comes out of reflection
// matching the compiler's layout.
func TestDescribeLayout(t *testing.T) {
	d, err := Describe[widget]().
		Plain("A").
		Plain("B").
		Pinned("C").
		Build()
	require.NoError(t, err)

	var w widget
	fields := d.Fields()
	require.Len(t, fields, 3)

	assert.Equal(t, unsafe.Offsetof(w.A), fields[0].Offset)
	assert.Equal(t, unsafe.Offsetof(w.B), fields[1].Offset)
	assert.Equal(t, unsafe.Offsetof(w.C), fields[2].Offset)
	assert.Equal(t, unsafe.Sizeof(w.C), fields[2].Size)
	assert.Equal(t, unsafe.Alignof(w.C), fields[2].Align)

	assert.Equal(t, unsafe.Sizeof(w), d.Size())
	assert.Equal(t, unsafe.Alignof(w), d.Align())

	assert.False(t, fields[0].Pinned)
	assert.True(t, fields[2].Pinned)
	assert.True(t, d.Pinned(), "one pinned field pins the composite")
}

// TestDescribePartialFieldList verifies a descriptor may cover a subset of
// the struct's fields, as long as order is declared order.
func TestDescribePartialFieldList(t *testing.T) {
	d, err := Describe[widget]().
		Plain("A").
		Plain("C").
		Build()
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.False(t, d.Pinned())
}

// TestDescribeErrors verifies builder validation.
func TestDescribeErrors(t *testing.T) {
	_, err := Describe[int]().Build()
	assert.ErrorIs(t, err, ErrNotStruct)

	_, err = Describe[widget]().Plain("Nope").Build()
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = Describe[widget]().Plain("A").Plain("A").Build()
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = Describe[widget]().Plain("B").Plain("A").Build()
	assert.ErrorIs(t, err, ErrFieldOrder)

	// First violation sticks even when later calls are fine.
	_, err = Describe[widget]().Plain("Nope").Plain("A").Build()
	assert.ErrorIs(t, err, ErrUnknownField)
}

type tracked struct {
	id  int
	log *[]int
}

func (t *tracked) Drop() {
	*t.log = append(*t.log, t.id)
}

type trio struct {
	A tracked
	B tracked
	C tracked
}

func trioDesc(t *testing.T) *Descriptor {
	t.Helper()
	d, err := Describe[trio]().
		Plain("A").
		Plain("B").
		Plain("C").
		Build()
	require.NoError(t, err)
	return d
}

// TestDropFields verifies reverse-declared-order destruction of a whole
// composite.
func TestDropFields(t *testing.T) {
	var log []int
	v := trio{
		A: tracked{id: 1, log: &log},
		B: tracked{id: 2, log: &log},
		C: tracked{id: 3, log: &log},
	}

	trioDesc(t).DropFields(unsafe.Pointer(&v))
	assert.Equal(t, []int{3, 2, 1}, log)
}
