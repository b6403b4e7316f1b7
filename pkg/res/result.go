package res

import (
	"github.com/opt-kit/optkit/internal/storage"
	"github.com/opt-kit/optkit/pkg/opt"
)

// Result holds either a success payload of type T or a failure payload of
// type E. There is no empty state; construction always picks a branch, and
// the zero value behaves as Failure of E's zero value.
type Result[T, E any] struct {
	s storage.Result[T, E]
}

// Success constructs a Result carrying the success payload.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{s: storage.MakeOk[T, E](v)}
}

// Failure constructs a Result carrying the failure payload.
func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{s: storage.MakeErr[T](e)}
}

// FromError adapts Go's (T, error) convention: a nil error becomes Success,
// anything else Failure.
func FromError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.s.IsOk()
}

func (r Result[T, E]) IsErr() bool {
	return !r.s.IsOk()
}

// Get reads the success payload without draining.
func (r Result[T, E]) Get() (T, bool) {
	if !r.s.IsOk() {
		var zero T
		return zero, false
	}
	return *r.s.Value(), true
}

// GetErr reads the failure payload without draining.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.s.IsOk() {
		var zero E
		return zero, false
	}
	return *r.s.Err(), true
}

// GetOr reads the success payload or falls back to def. Non-draining.
func (r Result[T, E]) GetOr(def T) T {
	if v, ok := r.Get(); ok {
		return v
	}
	return def
}

// Unwrap drains the success payload, zeroing its slot. Panics with
// ErrUnwrapFailure when the Result carries a failure.
func (r *Result[T, E]) Unwrap() T {
	if !r.s.IsOk() {
		panic(ErrUnwrapFailure)
	}
	return r.s.MoveValue()
}

// UnwrapErr drains the failure payload. Panics with ErrUnwrapSuccess when
// the Result carries a success.
func (r *Result[T, E]) UnwrapErr() E {
	if r.s.IsOk() {
		panic(ErrUnwrapSuccess)
	}
	return r.s.MoveErr()
}

// UnwrapOr drains the success payload or consumes def.
func (r *Result[T, E]) UnwrapOr(def T) T {
	if r.s.IsOk() {
		return r.s.MoveValue()
	}
	return def
}

// UnwrapOrZero drains the success payload or yields the zero value.
func (r *Result[T, E]) UnwrapOrZero() T {
	if r.s.IsOk() {
		return r.s.MoveValue()
	}
	var zero T
	return zero
}

// UnwrapOrElse drains the success payload or computes the fallback from the
// failure payload. onErr runs only on the failure branch.
func (r *Result[T, E]) UnwrapOrElse(onErr func(E) T) T {
	if r.s.IsOk() {
		return r.s.MoveValue()
	}
	return onErr(*r.s.Err())
}

// Swap exchanges the states of two Results in place, crossing the
// success/failure boundary when the two sides disagree.
func (r *Result[T, E]) Swap(other *Result[T, E]) {
	r.s.Swap(&other.s)
}

// Ok projects the success branch to an Option. Non-draining.
func (r Result[T, E]) Ok() opt.Option[T] {
	if v, ok := r.Get(); ok {
		return opt.Some(v)
	}
	return opt.None[T]()
}

// Err projects the failure branch to an Option. Non-draining.
func (r Result[T, E]) Err() opt.Option[E] {
	if e, ok := r.GetErr(); ok {
		return opt.Some(e)
	}
	return opt.None[E]()
}

// AsRef produces a borrow view over whichever payload is live, without
// draining. The view must not outlive the receiver.
func (r *Result[T, E]) AsRef() Result[opt.Ref[T], opt.Ref[E]] {
	if r.s.IsOk() {
		return Success[opt.Ref[T], opt.Ref[E]](opt.NewRef(r.s.Value()))
	}
	return Failure[opt.Ref[T]](opt.NewRef(r.s.Err()))
}

// AsConstRef is AsRef with the mutation path removed.
func (r *Result[T, E]) AsConstRef() Result[opt.ConstRef[T], opt.ConstRef[E]] {
	if r.s.IsOk() {
		return Success[opt.ConstRef[T], opt.ConstRef[E]](opt.NewConstRef(r.s.Value()))
	}
	return Failure[opt.ConstRef[T]](opt.NewConstRef(r.s.Err()))
}
