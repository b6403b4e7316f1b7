package storage

// Uniform is the identity-optimized result engine for the case where the
// success and failure payloads have the same type: one shared slot plus a
// single discriminant instead of two slots.
type Uniform[T any] struct {
	slot Slot[T]
	ok   bool
}

func MakeUniform[T any](v T, ok bool) Uniform[T] {
	var u Uniform[T]
	u.slot.Construct(v)
	u.ok = ok
	return u
}

func (u *Uniform[T]) IsOk() bool {
	return u.ok
}

func (u *Uniform[T]) Get() *T {
	return u.slot.Get()
}

// MoveOut drains the payload, leaving the slot zeroed and the discriminant
// untouched.
func (u *Uniform[T]) MoveOut() T {
	v := *u.slot.Get()
	u.slot.Destroy()
	return v
}

func (u *Uniform[T]) Swap(other *Uniform[T]) {
	*u.slot.Get(), *other.slot.Get() = *other.slot.Get(), *u.slot.Get()
	u.ok, other.ok = other.ok, u.ok
}
