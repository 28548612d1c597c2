package slot

// MapErr returns an Init that runs in and rewrites any failure through fn.
// Success passes through untouched; the pin flavor is preserved.
func (in Init[T]) MapErr(fn func(error) error) Init[T] {
	return Init[T]{
		pin:  in.pin,
		used: new(bool),
		run: func(s Slot) error {
			if err := Run(in, s); err != nil {
				return fn(err)
			}
			return nil
		},
	}
}

// Validate chains a post-construction check onto in.
//
// The check sees the fully-constructed value. When it rejects the value, the
// value's Dropper runs before the error propagates, so the slot's bytes are
// once again safely discardable; no partial-destruction logic applies here
// because construction had already completed.
func (in Init[T]) Validate(check func(*T) error) Init[T] {
	return Init[T]{
		pin:  in.pin,
		used: new(bool),
		run: func(s Slot) error {
			if err := Run(in, s); err != nil {
				return err
			}
			v, err := View[T](s)
			if err != nil {
				return err
			}
			if err := check(v); err != nil {
				DropInPlace(v)
				return err
			}
			return nil
		},
	}
}
