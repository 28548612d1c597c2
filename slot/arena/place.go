package arena

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/slotkit/slot"
)

// Place reserves arena storage for one T and runs in against it.
//
// On success the value lives at a genuinely fixed address inside the arena
// until Close; pin-flavored initializers are satisfied. On initializer
// failure the reserved cell is handed back to the bump tail when possible
// and no Dropper runs; on reservation failure the initializer is never
// invoked.
//
// T must be pointer-free; see the package documentation.
func Place[T any](a *Arena, in slot.Init[T]) (*T, error) {
	var zero T
	size, al := unsafe.Sizeof(zero), unsafe.Alignof(zero)

	if typ := reflect.TypeFor[T](); hasPointers(typ) {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, typ)
	}

	m := a.mark()
	s, err := a.Reserve(size, al)
	if err != nil {
		return nil, err
	}
	if err := slot.Run(in, s); err != nil {
		a.release(m)
		return nil, err
	}
	a.placed++
	return (*T)(s.Base()), nil
}

// hasPointers reports whether t contains any Go pointer the collector would
// need to scan.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.String, reflect.Interface, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
