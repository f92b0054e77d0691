package sharedptr

// Ptr is a reference-counted handle to a T, with copy-on-write mutation.
//
// The zero value is not usable; construct with New. Ptr is a small value
// type (a pointer to a shared box) and is cheap to copy; copying a Ptr does
// NOT bump the refcount — call Clone for that.
type Ptr[T any] struct {
	box *box[T]
}

type box[T any] struct {
	refs  refcount
	value T
}

// New creates a handle around value with a refcount of one.
func New[T any](value T) Ptr[T] {
	return Ptr[T]{box: &box[T]{refs: newRefcount(1), value: value}}
}

// Clone returns a handle sharing the same underlying value, with the
// refcount incremented. This is the Go analogue of Rc::clone/Arc::clone.
func (p Ptr[T]) Clone() Ptr[T] {
	p.box.refs.add(1)
	return p
}

// Release decrements the refcount without touching the value. Call this
// when a specific clone of a handle is discarded without being stored
// anywhere else, so later Unique/MakeMut calls on sibling clones see an
// accurate count.
func (p Ptr[T]) Release() {
	p.box.refs.add(-1)
}

// Unique reports whether this is (as far as the recorded refcount shows)
// the only handle to the underlying value.
func (p Ptr[T]) Unique() bool {
	return p.box.refs.load() == 1
}

// Get returns a read-only pointer to the underlying value.
func (p Ptr[T]) Get() *T {
	return &p.box.value
}

// MakeMut returns an exclusive, mutable pointer to the underlying value.
//
// If the handle is uniquely owned, the existing value is returned in place
// (no allocation). Otherwise clone is used to copy the value into a freshly
// allocated box with a fresh refcount of one, the old box's count is
// released, and the new box's value is returned. clone must produce a value
// equal in content to its argument but independent of any nested handles it
// holds (i.e. it must itself Clone, not alias, any nested Ptr fields).
func (p *Ptr[T]) MakeMut(clone func(T) T) *T {
	if p.Unique() {
		return &p.box.value
	}
	next := clone(p.box.value)
	p.box.refs.add(-1)
	p.box = &box[T]{refs: newRefcount(1), value: next}
	return &p.box.value
}

// Take consumes the handle, moving the value out when uniquely owned and
// cloning it otherwise. clone has the same obligations as in MakeMut.
func (p Ptr[T]) Take(clone func(T) T) T {
	if p.Unique() {
		return p.box.value
	}
	p.box.refs.add(-1)
	return clone(p.box.value)
}
