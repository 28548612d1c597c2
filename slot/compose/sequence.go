package compose

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/slotkit/slot"
)

// FieldInit pairs a field name with the (type-erased) initializer that will
// construct it. Build one with Use.
type FieldInit struct {
	name string
	pin  bool
	typ  reflect.Type
	run  func(slot.Slot) error
}

// Use binds an initializer for one named field of the composite. F must be
// the field's exact type; Sequence verifies the pairing against the
// descriptor.
func Use[F any](name string, in slot.Init[F]) FieldInit {
	return FieldInit{
		name: name,
		pin:  in.Pinned(),
		typ:  reflect.TypeFor[F](),
		run: func(s slot.Slot) error {
			return slot.Run(in, s)
		},
	}
}

// Sequence builds the composite initializer for T from a descriptor and one
// initializer per field.
//
// Assembly-time checks: T matches the descriptor's type, every descriptor
// field has exactly one initializer of the field's type, pinned fields have
// pin-flavored initializers, and no plain field has one. The result is
// pin-flavored exactly when the descriptor has a pinned field.
//
// At run time fields are constructed strictly sequentially in declared
// order. The first failure rolls back the completed prefix in reverse order
// and propagates that field's error as the composite's error, leaving the
// slot's bytes safe to discard.
func Sequence[T any](d *Descriptor, inits ...FieldInit) (slot.Init[T], error) {
	var none slot.Init[T]

	if d == nil {
		return none, fmt.Errorf("%w: nil descriptor", ErrTypeMismatch)
	}
	if got := reflect.TypeFor[T](); got != d.typ {
		return none, fmt.Errorf("%w: descriptor for %s, sequencing %s", ErrTypeMismatch, d.typ, got)
	}
	if len(inits) != len(d.fields) {
		return none, fmt.Errorf("%w: %d fields, %d initializers", ErrInitCount, len(d.fields), len(inits))
	}

	runs := make([]func(slot.Slot) error, len(d.fields))
	for _, fi := range inits {
		idx := -1
		for i := range d.fields {
			if d.fields[i].Name == fi.name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return none, fmt.Errorf("%w: %s.%s", ErrUnknownField, d.typ, fi.name)
		}
		if runs[idx] != nil {
			return none, fmt.Errorf("%w: %s.%s", ErrDuplicateInit, d.typ, fi.name)
		}
		f := d.fields[idx]
		if fi.typ != f.typ {
			return none, fmt.Errorf("%w: %s.%s is %s, initializer builds %s",
				ErrFieldType, d.typ, f.Name, f.typ, fi.typ)
		}
		if f.Pinned && !fi.pin {
			return none, fmt.Errorf("%w: %s.%s", ErrPinRequired, d.typ, f.Name)
		}
		if !f.Pinned && fi.pin {
			return none, fmt.Errorf("%w: %s.%s", ErrPinOnPlain, d.typ, f.Name)
		}
		runs[idx] = fi.run
	}

	run := func(s slot.Slot) error {
		g := newGuard(d, s.Base())
		for i := range d.fields {
			f := d.fields[i]
			sub, err := fieldSlot(s, f)
			if err != nil {
				g.rollback()
				return fmt.Errorf("field %s: %w", f.Name, err)
			}
			if err := runs[i](sub); err != nil {
				g.rollback()
				return err
			}
			g.markDone()
		}
		g.defuse()
		return nil
	}

	if d.pinned {
		return slot.FromPinFunc[T](run), nil
	}
	return slot.FromFunc[T](run), nil
}

// fieldSlot derives the sub-slot a field is constructed in, pin-flavored
// when the field is structurally pinned.
func fieldSlot(s slot.Slot, f Field) (slot.Slot, error) {
	if f.Pinned {
		return s.PinField(f.Offset, f.Size, f.Align)
	}
	return s.Field(f.Offset, f.Size, f.Align)
}
