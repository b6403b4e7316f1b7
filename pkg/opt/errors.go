package opt

import "errors"

var (
	// ErrUnwrapNone reports an unwrap of an absent Option. Unwrapping None
	// is a programming error; the container panics rather than degrading.
	ErrUnwrapNone = errors.New("opt: unwrap of a None Option")

	// ErrNilRef reports an attempt to build a borrow handle over nil.
	ErrNilRef = errors.New("opt: Ref must point at a live value")
)
