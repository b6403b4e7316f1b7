package opt

import "github.com/opt-kit/optkit/internal/storage"

// Option holds either one payload value or nothing. The zero value is None.
type Option[T any] struct {
	s storage.Option[T]
}

// Some constructs a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{s: storage.MakeSome(v)}
}

// None constructs an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr lifts a nullable pointer: nil becomes None, anything else becomes
// Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.s.IsSome()
}

func (o Option[T]) IsNone() bool {
	return !o.s.IsSome()
}

// Get reads the payload without draining. The second return reports
// presence; the first is the zero value when absent.
func (o Option[T]) Get() (T, bool) {
	if !o.s.IsSome() {
		var zero T
		return zero, false
	}
	return *o.s.Get(), true
}

// GetOr reads the payload or falls back to def. Non-draining.
func (o Option[T]) GetOr(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

// GetOrZero reads the payload or falls back to the zero value. Non-draining.
func (o Option[T]) GetOrZero() T {
	v, _ := o.Get()
	return v
}

// GetOrElse reads the payload or computes the fallback. onNone runs only on
// the absent branch. Non-draining.
func (o Option[T]) GetOrElse(onNone func() T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return onNone()
}

// ToPtr returns the payload boxed behind a fresh pointer, or nil when
// absent. The pointer does not alias the container.
func (o Option[T]) ToPtr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

// Unwrap drains the payload out of the Option, leaving it None. Panics with
// ErrUnwrapNone when absent.
func (o *Option[T]) Unwrap() T {
	if !o.s.IsSome() {
		panic(ErrUnwrapNone)
	}
	return o.s.MoveOut()
}

// UnwrapOr drains the payload or consumes def. The receiver is None
// afterwards in either case.
func (o *Option[T]) UnwrapOr(def T) T {
	if o.s.IsSome() {
		return o.s.MoveOut()
	}
	return def
}

// UnwrapOrZero drains the payload or yields the zero value.
func (o *Option[T]) UnwrapOrZero() T {
	if o.s.IsSome() {
		return o.s.MoveOut()
	}
	var zero T
	return zero
}

// UnwrapOrElse drains the payload or computes the fallback. onNone runs only
// on the absent branch.
func (o *Option[T]) UnwrapOrElse(onNone func() T) T {
	if o.s.IsSome() {
		return o.s.MoveOut()
	}
	return onNone()
}

// Take replaces the receiver with None and returns the prior state.
func (o *Option[T]) Take() Option[T] {
	tmp := None[T]()
	o.Swap(&tmp)
	return tmp
}

// Insert constructs a present Option from v, swaps it into the receiver and
// returns the prior state. The replacement is built before the receiver is
// touched, so the receiver is never left half-updated.
func (o *Option[T]) Insert(v T) Option[T] {
	tmp := Some(v)
	o.Swap(&tmp)
	return tmp
}

// Swap exchanges the states of two Options in place.
func (o *Option[T]) Swap(other *Option[T]) {
	o.s.Swap(&other.s)
}

// AsRef produces a borrow view over the payload in place, without draining.
// The view must not outlive the receiver. Present collapses to a non-nil
// handle, absent to the nil-encoded RefOption.
func (o *Option[T]) AsRef() RefOption[T] {
	if !o.s.IsSome() {
		return NoneRef[T]()
	}
	return SomeRef(NewRef(o.s.Get()))
}

// AsConstRef is AsRef with the mutation path removed: the view can only
// read the payload.
func (o *Option[T]) AsConstRef() ConstRefOption[T] {
	if !o.s.IsSome() {
		return ConstRefOption[T]{}
	}
	return ConstRefOption[T]{s: storage.MakeRefSome(o.s.Get())}
}

// OrElse yields the receiver when present, otherwise the Option produced by
// onNone. onNone runs only on the absent branch.
func (o Option[T]) OrElse(onNone func() Option[T]) Option[T] {
	if o.s.IsSome() {
		return o
	}
	return onNone()
}

// Filter keeps the payload only when pred accepts it; None short-circuits
// without invoking pred.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if v, ok := o.Get(); ok && pred(v) {
		return o
	}
	return None[T]()
}
