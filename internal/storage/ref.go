package storage

// RefSlot is the pointer-niche engine for optionals of borrowed references.
// Absent is encoded as nil, present as the non-nil referent address, so the
// whole engine is exactly one pointer wide with no separate flag.
type RefSlot[T any] struct {
	ptr *T
}

func MakeRefSome[T any](p *T) RefSlot[T] {
	return RefSlot[T]{ptr: p}
}

func MakeRefNone[T any]() RefSlot[T] {
	return RefSlot[T]{}
}

func (s *RefSlot[T]) IsSome() bool {
	return s.ptr != nil
}

func (s *RefSlot[T]) Get() *T {
	return s.ptr
}

func (s *RefSlot[T]) Set(p *T) {
	s.ptr = p
}

func (s *RefSlot[T]) Clear() {
	s.ptr = nil
}

func (s *RefSlot[T]) Swap(other *RefSlot[T]) {
	s.ptr, other.ptr = other.ptr, s.ptr
}

// MoveOut drains the referent address. Callers must have checked IsSome.
func (s *RefSlot[T]) MoveOut() *T {
	p := s.ptr
	s.ptr = nil
	return p
}
