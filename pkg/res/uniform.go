package res

import "github.com/opt-kit/optkit/internal/storage"

// Uniform is a Result whose success and failure payloads share one type and
// therefore one slot: a single payload plus a discriminant bit, half the
// storage of the two-slot layout.
type Uniform[T any] struct {
	s storage.Uniform[T]
}

// UniformSuccess constructs a Uniform carrying v on the success branch.
func UniformSuccess[T any](v T) Uniform[T] {
	return Uniform[T]{s: storage.MakeUniform(v, true)}
}

// UniformFailure constructs a Uniform carrying v on the failure branch.
func UniformFailure[T any](v T) Uniform[T] {
	return Uniform[T]{s: storage.MakeUniform(v, false)}
}

// Merge squeezes a two-slot Result[T, T] into the shared-slot encoding.
func Merge[T any](r Result[T, T]) Uniform[T] {
	if v, ok := r.Get(); ok {
		return UniformSuccess(v)
	}
	e, _ := r.GetErr()
	return UniformFailure(e)
}

func (u Uniform[T]) IsOk() bool {
	return u.s.IsOk()
}

func (u Uniform[T]) IsErr() bool {
	return !u.s.IsOk()
}

// Get reads the success payload without draining.
func (u Uniform[T]) Get() (T, bool) {
	if !u.s.IsOk() {
		var zero T
		return zero, false
	}
	return *u.s.Get(), true
}

// GetErr reads the failure payload without draining.
func (u Uniform[T]) GetErr() (T, bool) {
	if u.s.IsOk() {
		var zero T
		return zero, false
	}
	return *u.s.Get(), true
}

// Unwrap drains the success payload. Panics with ErrUnwrapFailure when the
// failure branch is live.
func (u *Uniform[T]) Unwrap() T {
	if !u.s.IsOk() {
		panic(ErrUnwrapFailure)
	}
	return u.s.MoveOut()
}

// UnwrapErr drains the failure payload. Panics with ErrUnwrapSuccess when
// the success branch is live.
func (u *Uniform[T]) UnwrapErr() T {
	if u.s.IsOk() {
		panic(ErrUnwrapSuccess)
	}
	return u.s.MoveOut()
}

// Swap exchanges payloads and discriminants in place.
func (u *Uniform[T]) Swap(other *Uniform[T]) {
	u.s.Swap(&other.s)
}

// Split expands back to the two-slot Result[T, T].
func (u Uniform[T]) Split() Result[T, T] {
	if v, ok := u.Get(); ok {
		return Success[T, T](v)
	}
	e, _ := u.GetErr()
	return Failure[T](e)
}
