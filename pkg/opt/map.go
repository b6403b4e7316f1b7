package opt

// Map applies f to the payload, producing an Option of f's result type.
// None short-circuits without invoking f. The input is not mutated; for a
// draining chain, write Map(o.Take(), f).
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// MapUnit maps through a function that produces nothing: the result
// collapses to Option[Unit], keeping the chain composable.
func MapUnit[T any](o Option[T], f func(T)) Option[Unit] {
	if v, ok := o.Get(); ok {
		f(v)
		return Some(Unit{})
	}
	return None[Unit]()
}

// MapRef maps through a function that produces a borrow: the result
// collapses to RefOption, so the pointer-niche encoding survives the chain.
func MapRef[T, U any](o Option[T], f func(T) Ref[U]) RefOption[U] {
	if v, ok := o.Get(); ok {
		return SomeRef(f(v))
	}
	return NoneRef[U]()
}

// AndThen applies a function that itself produces an Option, flattening the
// result. None short-circuits to None of the new type without invoking f.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Flatten collapses a nested Option by one level.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}
