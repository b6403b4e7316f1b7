package storage

// Option pairs a raw slot with a liveness flag. At most one payload is ever
// live per instance; all moves out of the engine drain the source.
//
// For zero-size payload types the slot occupies no bytes, so the whole
// engine collapses to the flag alone.
type Option[T any] struct {
	slot Slot[T]
	live bool
}

func MakeSome[T any](v T) Option[T] {
	var o Option[T]
	o.Emplace(v)
	return o
}

func MakeNone[T any]() Option[T] {
	return Option[T]{}
}

func (o *Option[T]) IsSome() bool {
	return o.live
}

// Get yields the live payload. Callers must have checked IsSome.
func (o *Option[T]) Get() *T {
	return o.slot.Get()
}

// Emplace constructs a payload in place, replacing any live one.
func (o *Option[T]) Emplace(v T) {
	o.slot.Construct(v)
	o.live = true
}

// Clear destroys the payload if live and marks the engine absent.
func (o *Option[T]) Clear() {
	if o.live {
		o.slot.Destroy()
		o.live = false
	}
}

// Swap exchanges the states of two engines. Four cases: both live swaps the
// payload values in place, exactly one live moves the payload into the empty
// side and drains the source, neither live is a no-op. A slot is never read
// while absent and never constructed twice without an intervening Clear.
func (o *Option[T]) Swap(other *Option[T]) {
	switch {
	case o.live && other.live:
		*o.slot.Get(), *other.slot.Get() = *other.slot.Get(), *o.slot.Get()
	case other.live:
		o.Emplace(*other.slot.Get())
		other.Clear()
	case o.live:
		other.Emplace(*o.slot.Get())
		o.Clear()
	}
}

// MoveOut drains the payload out of the engine. Callers must have checked
// IsSome.
func (o *Option[T]) MoveOut() T {
	v := *o.slot.Get()
	o.Clear()
	return v
}
