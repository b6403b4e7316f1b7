package res

import "github.com/opt-kit/optkit/pkg/opt"

// Map applies f to the success payload, carrying the failure payload across
// unchanged. Failure short-circuits without invoking f.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if v, ok := r.Get(); ok {
		return Success[U, E](f(v))
	}
	e, _ := r.GetErr()
	return Failure[U](e)
}

// MapErr applies f to the failure payload, carrying the success payload
// across unchanged. Success short-circuits without invoking f.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if e, ok := r.GetErr(); ok {
		return Failure[T](f(e))
	}
	v, _ := r.Get()
	return Success[T, F](v)
}

// MapUnit maps the success branch through a function that produces nothing;
// the result collapses to Result[opt.Unit, E].
func MapUnit[T, E any](r Result[T, E], f func(T)) Result[opt.Unit, E] {
	if v, ok := r.Get(); ok {
		f(v)
		return Success[opt.Unit, E](opt.Unit{})
	}
	e, _ := r.GetErr()
	return Failure[opt.Unit](e)
}

// AndThen applies a function that itself produces a Result, flattening the
// outcome. Failure short-circuits, re-wrapping the original failure payload
// at the new success type without invoking f.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	e, _ := r.GetErr()
	return Failure[U](e)
}

// OrElse is the dual of AndThen: f runs only on the failure branch and may
// recover to success or translate the failure type.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if e, ok := r.GetErr(); ok {
		return f(e)
	}
	v, _ := r.Get()
	return Success[T, F](v)
}
