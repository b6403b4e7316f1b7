package opt

import "cmp"

// Compare orders two Options: None sorts before any Some, two Nones are
// equal, and two Somes delegate to the payload ordering.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with an explicit payload comparison.
func CompareFunc[T any](a, b Option[T], compare func(T, T) int) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		return compare(av, bv)
	case aok:
		return 1
	case bok:
		return -1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b Option[T]) bool {
	return Compare(a, b) < 0
}

// Equal reports payload equality; two Nones are equal, mixed states are not.
func Equal[T comparable](a, b Option[T]) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}
	return !aok || av == bv
}
