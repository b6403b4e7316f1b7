package opt

import "github.com/opt-kit/optkit/internal/storage"

// RefOption is an optional borrow. Absence is encoded as the nil referent
// address, so the container is exactly one pointer wide; no separate
// discriminant exists to get out of sync. The zero value is NoneRef.
type RefOption[T any] struct {
	s storage.RefSlot[T]
}

// SomeRef constructs a present optional borrow.
func SomeRef[T any](r Ref[T]) RefOption[T] {
	return RefOption[T]{s: storage.MakeRefSome(r.ptr)}
}

// NoneRef constructs an absent optional borrow.
func NoneRef[T any]() RefOption[T] {
	return RefOption[T]{}
}

func (o RefOption[T]) IsSome() bool {
	return o.s.IsSome()
}

func (o RefOption[T]) IsNone() bool {
	return !o.s.IsSome()
}

// Get reads the borrow without draining.
func (o RefOption[T]) Get() (Ref[T], bool) {
	if !o.s.IsSome() {
		return Ref[T]{}, false
	}
	return Ref[T]{ptr: o.s.Get()}, true
}

// Deref reads a copy of the referent without draining.
func (o RefOption[T]) Deref() (T, bool) {
	if !o.s.IsSome() {
		var zero T
		return zero, false
	}
	return *o.s.Get(), true
}

// Unwrap drains the borrow out of the container, leaving it NoneRef. Panics
// with ErrUnwrapNone when absent.
func (o *RefOption[T]) Unwrap() Ref[T] {
	if !o.s.IsSome() {
		panic(ErrUnwrapNone)
	}
	return Ref[T]{ptr: o.s.MoveOut()}
}

// UnwrapOr drains the borrow or falls back to def.
func (o *RefOption[T]) UnwrapOr(def Ref[T]) Ref[T] {
	if o.s.IsSome() {
		return Ref[T]{ptr: o.s.MoveOut()}
	}
	return def
}

// Take replaces the receiver with NoneRef and returns the prior state.
func (o *RefOption[T]) Take() RefOption[T] {
	tmp := NoneRef[T]()
	o.Swap(&tmp)
	return tmp
}

// Insert swaps a fresh borrow of r into the receiver and returns the prior
// state.
func (o *RefOption[T]) Insert(r Ref[T]) RefOption[T] {
	tmp := SomeRef(r)
	o.Swap(&tmp)
	return tmp
}

// Swap is a single pointer exchange.
func (o *RefOption[T]) Swap(other *RefOption[T]) {
	o.s.Swap(&other.s)
}

// Const converts the view to its read-only counterpart.
func (o RefOption[T]) Const() ConstRefOption[T] {
	return ConstRefOption[T]{s: o.s}
}

// ConstRefOption is the read-only optional borrow: same nil-niche layout as
// RefOption, accessors yield copies only.
type ConstRefOption[T any] struct {
	s storage.RefSlot[T]
}

// SomeConstRef constructs a present read-only optional borrow.
func SomeConstRef[T any](r ConstRef[T]) ConstRefOption[T] {
	return ConstRefOption[T]{s: storage.MakeRefSome(r.ptr)}
}

func (o ConstRefOption[T]) IsSome() bool {
	return o.s.IsSome()
}

func (o ConstRefOption[T]) IsNone() bool {
	return !o.s.IsSome()
}

// Get reads the borrow without draining.
func (o ConstRefOption[T]) Get() (ConstRef[T], bool) {
	if !o.s.IsSome() {
		return ConstRef[T]{}, false
	}
	return ConstRef[T]{ptr: o.s.Get()}, true
}

// Deref reads a copy of the referent without draining.
func (o ConstRefOption[T]) Deref() (T, bool) {
	if !o.s.IsSome() {
		var zero T
		return zero, false
	}
	return *o.s.Get(), true
}

// Unwrap drains the borrow out of the container. Panics with ErrUnwrapNone
// when absent.
func (o *ConstRefOption[T]) Unwrap() ConstRef[T] {
	if !o.s.IsSome() {
		panic(ErrUnwrapNone)
	}
	return ConstRef[T]{ptr: o.s.MoveOut()}
}
