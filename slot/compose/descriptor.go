package compose

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/slotkit/slot"
)

// Field is one entry of a composite descriptor: where the field lives inside
// the composite and whether its address-fixedness propagates to the whole.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
	Align  uintptr
	Pinned bool

	typ   reflect.Type
	index int // declaration index within the struct
}

// Descriptor is static metadata describing how one composite type is
// constructed: its participating fields in declared order, each tagged
// plain or pinned. Immutable after Build; safe to share across sequences.
type Descriptor struct {
	typ    reflect.Type
	fields []Field
	pinned bool
}

// Builder assembles a Descriptor for composite type T. Field lookups and
// ordering are validated as fields are added; the first violation sticks and
// surfaces from Build.
type Builder[T any] struct {
	typ    reflect.Type
	fields []Field
	seen   map[string]bool
	last   int
	err    error
}

// Describe starts a descriptor for composite type T.
func Describe[T any]() *Builder[T] {
	typ := reflect.TypeFor[T]()
	b := &Builder[T]{typ: typ, seen: make(map[string]bool), last: -1}
	if typ.Kind() != reflect.Struct {
		b.err = fmt.Errorf("%w: %s", ErrNotStruct, typ)
	}
	return b
}

// Plain adds an ordinarily-movable field. Its initializer runs against a
// sub-slot without the address guarantee.
func (b *Builder[T]) Plain(name string) *Builder[T] {
	return b.add(name, false)
}

// Pinned adds a structurally pinned field: its initializer must be
// pin-flavored, and the whole composite's initializer becomes pin-flavored.
func (b *Builder[T]) Pinned(name string) *Builder[T] {
	return b.add(name, true)
}

func (b *Builder[T]) add(name string, pinned bool) *Builder[T] {
	if b.err != nil {
		return b
	}
	if b.seen[name] {
		b.err = fmt.Errorf("%w: %s.%s", ErrDuplicateField, b.typ, name)
		return b
	}

	idx := -1
	for i := range b.typ.NumField() {
		if b.typ.Field(i).Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.err = fmt.Errorf("%w: %s.%s", ErrUnknownField, b.typ, name)
		return b
	}
	if idx <= b.last {
		b.err = fmt.Errorf("%w: %s.%s", ErrFieldOrder, b.typ, name)
		return b
	}

	sf := b.typ.Field(idx)
	b.seen[name] = true
	b.last = idx
	b.fields = append(b.fields, Field{
		Name:   name,
		Offset: sf.Offset,
		Size:   sf.Type.Size(),
		Align:  uintptr(sf.Type.Align()),
		Pinned: pinned,
		typ:    sf.Type,
		index:  idx,
	})
	return b
}

// Build finalizes the descriptor.
func (b *Builder[T]) Build() (*Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	d := &Descriptor{typ: b.typ, fields: b.fields}
	for _, f := range d.fields {
		if f.Pinned {
			d.pinned = true
			break
		}
	}
	return d, nil
}

// Type returns the composite type the descriptor was built for.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Size returns the composite type's size in bytes.
func (d *Descriptor) Size() uintptr { return d.typ.Size() }

// Align returns the composite type's alignment.
func (d *Descriptor) Align() uintptr { return uintptr(d.typ.Align()) }

// Pinned reports whether any field is structurally pinned, which makes the
// sequenced composite initializer pin-flavored.
func (d *Descriptor) Pinned() bool { return d.pinned }

// Len returns the number of participating fields.
func (d *Descriptor) Len() int { return len(d.fields) }

// Fields returns a copy of the descriptor's field list in declared order.
func (d *Descriptor) Fields() []Field {
	out := make([]Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// DropFields runs each field's Dropper, in reverse declared order, against
// the composite value at base. Intended for a composite's own Drop method,
// so final destruction mirrors rollback order without hand-written
// bookkeeping.
func (d *Descriptor) DropFields(base unsafe.Pointer) {
	for i := len(d.fields) - 1; i >= 0; i-- {
		d.dropField(i, base)
	}
}

// dropField releases field i of the composite at base, if its type has a
// Dropper.
func (d *Descriptor) dropField(i int, base unsafe.Pointer) {
	f := d.fields[i]
	v := reflect.NewAt(f.typ, unsafe.Add(base, f.Offset))
	if dr, ok := v.Interface().(slot.Dropper); ok {
		dr.Drop()
	}
}
