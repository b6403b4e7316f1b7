// Package opt provides an optional-value container with monadic combinators
// and explicit ownership-transfer primitives.
//
// Key pieces:
// - Some/None/FromPtr: construct Option[T]
// - Get/GetOr/GetOrElse: non-draining access by value
// - Unwrap/UnwrapOr/UnwrapOrZero/UnwrapOrElse: draining extraction
// - Take/Insert/Swap: in-place state transfer returning the prior state
// - Map/MapUnit/MapRef/AndThen: type-changing combinators (free functions,
//   since Go methods cannot introduce type parameters)
// - OrElse/Filter: same-type combinators as methods
// - AsRef: a non-owning RefOption view over the payload in place
// - Compare/Equal: ordering where None sorts before any Some
//
// Unit is the zero-size "no payload" marker, Ref/ConstRef are non-nil borrow
// handles. RefOption encodes absence as a nil pointer, so an optional borrow
// costs exactly one word; Option[Unit] costs exactly one byte.
//
// Draining operations use pointer receivers and reset the source to None;
// everything on a value receiver leaves its input untouched. Draining
// composition is written opt.Map(o.Take(), f).
package opt
