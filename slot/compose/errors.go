package compose

import "errors"

var (
	// ErrNotStruct indicates Describe was instantiated with a non-struct type.
	ErrNotStruct = errors.New("compose: composite type is not a struct")

	// ErrUnknownField indicates a field name the composite type does not have.
	ErrUnknownField = errors.New("compose: unknown field")

	// ErrDuplicateField indicates the same field was listed twice in a
	// descriptor.
	ErrDuplicateField = errors.New("compose: field listed twice")

	// ErrFieldOrder indicates descriptor fields were not listed in the
	// composite's declared order.
	ErrFieldOrder = errors.New("compose: fields must be listed in declared order")

	// ErrTypeMismatch indicates Sequence's type parameter does not match the
	// descriptor's composite type.
	ErrTypeMismatch = errors.New("compose: descriptor is for a different type")

	// ErrInitCount indicates the number of field initializers does not match
	// the descriptor.
	ErrInitCount = errors.New("compose: wrong number of field initializers")

	// ErrDuplicateInit indicates two initializers were given for one field.
	ErrDuplicateInit = errors.New("compose: duplicate initializer for field")

	// ErrFieldType indicates a field initializer's value type does not match
	// the descriptor field's type.
	ErrFieldType = errors.New("compose: initializer type does not match field")

	// ErrPinRequired indicates a structurally pinned field was given a plain
	// initializer.
	ErrPinRequired = errors.New("compose: pinned field requires a pin initializer")

	// ErrPinOnPlain indicates a pin initializer was given for a plain field,
	// whose sub-slot makes no address guarantee.
	ErrPinOnPlain = errors.New("compose: pin initializer on a plain field")
)
