package storage

// Result holds either a success payload or a failure payload, never both.
// The success side reuses the Option engine; its liveness flag doubles as
// the discriminant, so no second flag exists. The failure slot is raw and
// is live exactly when the option engine is absent.
type Result[T, E any] struct {
	ok  Option[T]
	err Slot[E]
}

func MakeOk[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: MakeSome(v)}
}

func MakeErr[T, E any](e E) Result[T, E] {
	var r Result[T, E]
	r.err.Construct(e)
	return r
}

func (r *Result[T, E]) IsOk() bool {
	return r.ok.IsSome()
}

// Value yields the success payload. Callers must have checked IsOk.
func (r *Result[T, E]) Value() *T {
	return r.ok.Get()
}

// Err yields the failure payload. Callers must have checked !IsOk.
func (r *Result[T, E]) Err() *E {
	return r.err.Get()
}

// MoveValue drains the success payload, leaving the slot zeroed but the
// discriminant untouched. Callers must have checked IsOk.
func (r *Result[T, E]) MoveValue() T {
	v := *r.ok.Get()
	r.ok.slot.Destroy()
	return v
}

// MoveErr drains the failure payload. Callers must have checked !IsOk.
func (r *Result[T, E]) MoveErr() E {
	e := *r.err.Get()
	r.err.Destroy()
	return e
}

// Swap exchanges the states of two engines. When both sides agree on
// success/failure the live payloads swap in place. When they disagree, each
// payload crosses over to the other instance's slot of the same kind: the
// destination slot is constructed before the source is destroyed, and the
// success-side option swap flips the discriminants last.
func (r *Result[T, E]) Swap(other *Result[T, E]) {
	if r.IsOk() == other.IsOk() {
		if r.IsOk() {
			r.ok.Swap(&other.ok)
		} else {
			*r.err.Get(), *other.err.Get() = *other.err.Get(), *r.err.Get()
		}
		return
	}
	if r.IsOk() {
		// r carries the success, other carries the failure.
		r.err.Construct(*other.err.Get())
		other.err.Destroy()
		r.ok.Swap(&other.ok)
	} else {
		other.err.Construct(*r.err.Get())
		r.err.Destroy()
		r.ok.Swap(&other.ok)
	}
}
