package compose

import (
	"testing"

	"github.com/joshuapare/slotkit/slot"
)

// BenchmarkSequence measures assembling and running a three-field composite
// initializer. Initializers are single-use, so assembly is inside the loop.
func BenchmarkSequence(b *testing.B) {
	d, err := Describe[widget]().
		Plain("A").
		Plain("B").
		Pinned("C").
		Build()
	if err != nil {
		b.Fatal(err)
	}

	var w widget
	for range b.N {
		in, err := Sequence[widget](d,
			Use("A", slot.FromValue(uint64(1))),
			Use("B", slot.FromValue(uint32(2))),
			Use("C", slot.FromPinFunc[[2]uint64](func(s slot.Slot) error {
				return slot.Write(s, 0, [2]uint64{3, 4})
			})),
		)
		if err != nil {
			b.Fatal(err)
		}
		if err := slot.Run(in, slot.ForValue(&w)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDescribe measures descriptor construction alone.
func BenchmarkDescribe(b *testing.B) {
	for range b.N {
		if _, err := Describe[widget]().Plain("A").Plain("B").Pinned("C").Build(); err != nil {
			b.Fatal(err)
		}
	}
}
