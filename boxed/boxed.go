// Package boxed provides Box, a heap indirection with explicit value
// semantics: cloning copies the pointee, releasing transfers it.
package boxed

// Box owns at most one heap-allocated T. The zero Box owns nothing.
type Box[T any] struct {
	ptr *T
}

// New returns a Box owning a copy of v.
func New[T any](v T) *Box[T] {
	return &Box[T]{ptr: &v}
}

// Zero returns a Box owning a zero-valued T.
func Zero[T any]() *Box[T] {
	return &Box[T]{ptr: new(T)}
}

// IsNil reports whether the Box owns nothing.
func (b *Box[T]) IsNil() bool {
	return b.ptr == nil
}

// Ptr returns the owned pointer, nil when empty.
func (b *Box[T]) Ptr() *T {
	return b.ptr
}

// Deref returns the owned value. It panics on an empty Box.
func (b *Box[T]) Deref() T {
	if b.ptr == nil {
		panic("boxed: deref of empty Box")
	}
	return *b.ptr
}

// Set assigns v through the indirection, allocating when the Box is empty.
func (b *Box[T]) Set(v T) {
	if b.ptr == nil {
		b.ptr = new(T)
	}
	*b.ptr = v
}

// Clone returns a Box owning a copy of the pointee. An empty Box clones to
// an empty Box.
func (b *Box[T]) Clone() *Box[T] {
	if b.ptr == nil {
		return &Box[T]{}
	}
	v := *b.ptr
	return &Box[T]{ptr: &v}
}

// Release transfers ownership of the pointee to the caller, leaving the Box
// empty. Returns nil when the Box was already empty.
func (b *Box[T]) Release() *T {
	p := b.ptr
	b.ptr = nil
	return p
}

// Reset empties the Box.
func (b *Box[T]) Reset() {
	b.ptr = nil
}

// Swap exchanges the pointees of two boxes.
func (b *Box[T]) Swap(o *Box[T]) {
	b.ptr, o.ptr = o.ptr, b.ptr
}
