package storage

// Slot is a raw payload slot. It carries no liveness information; the layer
// above decides when Construct and Destroy may be called. Destroy zeroes the
// slot so that a drained payload can never resurface through a stale copy.
type Slot[T any] struct {
	val T
}

func (s *Slot[T]) Construct(v T) {
	s.val = v
}

func (s *Slot[T]) Destroy() {
	var zero T
	s.val = zero
}

func (s *Slot[T]) Get() *T {
	return &s.val
}
