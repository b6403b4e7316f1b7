package opt

// Ref is a non-owning, non-nil handle to a value that lives elsewhere. The
// handle must not outlive its referent; that obligation stays with the
// caller. Construction from nil fails fast.
type Ref[T any] struct {
	ptr *T
}

// NewRef borrows target. Panics with ErrNilRef when target is nil.
func NewRef[T any](target *T) Ref[T] {
	if target == nil {
		panic(ErrNilRef)
	}
	return Ref[T]{ptr: target}
}

// Get reads the referent.
func (r Ref[T]) Get() T {
	return *r.ptr
}

// Set writes through the handle to the referent.
func (r Ref[T]) Set(v T) {
	*r.ptr = v
}

// Ptr exposes the referent address.
func (r Ref[T]) Ptr() *T {
	return r.ptr
}

// Const converts to a read-only handle over the same referent.
func (r Ref[T]) Const() ConstRef[T] {
	return ConstRef[T]{ptr: r.ptr}
}

// Equals reports whether both handles borrow the same referent, not whether
// the referents compare equal.
func (r Ref[T]) Equals(other Ref[T]) bool {
	return r.ptr == other.ptr
}

// ConstRef is the read-only counterpart of Ref: same referent, no mutation
// path. A handle obtained through a read-only access chain stays read-only.
type ConstRef[T any] struct {
	ptr *T
}

// NewConstRef borrows target read-only. Panics with ErrNilRef when target
// is nil.
func NewConstRef[T any](target *T) ConstRef[T] {
	if target == nil {
		panic(ErrNilRef)
	}
	return ConstRef[T]{ptr: target}
}

// Get reads the referent.
func (r ConstRef[T]) Get() T {
	return *r.ptr
}

func (r ConstRef[T]) Equals(other ConstRef[T]) bool {
	return r.ptr == other.ptr
}
