package rrbtree

// Iter is a double-ended, splittable producer over a tree's elements in
// range order. Next and NextBack yield one element per call, each looked up
// from the root with Get; no chunk-at-a-time access is offered. It does not
// copy the tree; Next/NextBack read
// through the shared root, so concurrent iteration over two independently
// Clone()'d trees is safe, but mutating the tree underneath a live Iter is
// not.
type Iter[T any] struct {
	tree       *RrbTree[T]
	start, end Index
}

// Iter returns an iterator over the tree's current contents.
func (t *RrbTree[T]) Iter() *Iter[T] {
	return &Iter[T]{tree: t, start: 0, end: Index(t.Len())}
}

// Len reports how many elements remain between Next and NextBack.
func (it *Iter[T]) Len() int {
	if it.end < it.start {
		return 0
	}
	return int(it.end - it.start)
}

// Next returns the next element from the front, advancing the iterator.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.start >= it.end {
		return zero, false
	}
	v, _ := it.tree.Get(it.start)
	it.start++
	return v, true
}

// NextBack returns the next element from the back, retreating the
// iterator's end.
func (it *Iter[T]) NextBack() (T, bool) {
	var zero T
	if it.start >= it.end {
		return zero, false
	}
	it.end--
	v, _ := it.tree.Get(it.end)
	return v, true
}

// SplitAt divides the remaining range at relative position i into two
// independent iterators covering [0,i) and [i,len), the shape a
// parallel-iterator scheduler needs to fan work out across goroutines.
// Combining the halves back together is left to the caller: this package
// only exposes the split contract, not a scheduler.
func (it *Iter[T]) SplitAt(i int) (*Iter[T], *Iter[T]) {
	assert(i >= 0 && i <= it.Len(), "Iter.SplitAt index out of range")
	mid := it.start + Index(i)
	left := &Iter[T]{tree: it.tree, start: it.start, end: mid}
	right := &Iter[T]{tree: it.tree, start: mid, end: it.end}
	return left, right
}
