// Package res provides a success/failure container built on the same slot
// engines as package opt.
//
// Key pieces:
// - Success/Failure: construct Result[T, E]
// - Get/GetErr/GetOr: non-draining access by value
// - Unwrap/UnwrapErr/UnwrapOr/UnwrapOrZero/UnwrapOrElse: draining extraction
// - Swap: in-place exchange, including across the success/failure boundary
// - Map/MapErr/MapUnit/AndThen/OrElse: type-changing combinators
// - Ok/Err: project either branch to an opt.Option
// - AsRef/AsConstRef: non-owning borrow views over the live payload
// - Uniform: the single-slot encoding for Result[T, T]
//
// Exactly one branch is live at a time; the success side's liveness flag is
// the only discriminant. Draining operations use pointer receivers and zero
// the moved-out slot so stale copies cannot leak.
package res
