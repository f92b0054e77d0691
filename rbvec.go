package pvec

import "github.com/go-pvec/pvec/rrbtree"

// RbVec is a persistent vector whose tree is always strictly balanced: it
// never asks for a RelaxedBranch, so indexing is by plain radix arithmetic
// at every level and Append/SplitOff fall back to popping and re-pushing
// elements rather than splicing trees together (the techniques a relaxed
// tree uses to stay at O(log n) would themselves produce relaxed nodes).
// Prefer RrbVec unless splitting and concatenating rarely matter.
//
// The zero value is not ready for use; construct with NewRb.
type RbVec[T any] struct {
	tree    rrbtree.RrbTree[T]
	tail    [rrbtree.BranchFactor]T
	tailLen int
}

// NewRb returns an empty vector.
func NewRb[T any]() RbVec[T] {
	return RbVec[T]{tree: rrbtree.New[T]()}
}

// Len reports the number of elements in the vector.
func (v *RbVec[T]) Len() int { return v.tree.Len() + v.tailLen }

// IsEmpty reports whether the vector holds no elements.
func (v *RbVec[T]) IsEmpty() bool { return v.Len() == 0 }

// Clone returns a vector sharing structure with the receiver; later
// mutating calls on either copy clone-on-write along their own path.
func (v *RbVec[T]) Clone() RbVec[T] {
	return RbVec[T]{tree: v.tree.Clone(), tail: v.tail, tailLen: v.tailLen}
}

// Push appends item to the end of the vector.
func (v *RbVec[T]) Push(item T) {
	if v.tailLen == rrbtree.BranchFactor {
		v.tree.PushLeaf(rrbtree.LeafFrom(v.tail[:v.tailLen]...))
		v.tailLen = 0
	}
	v.tail[v.tailLen] = item
	v.tailLen++
}

// Pop removes and returns the last element. ok is false on an empty vector.
func (v *RbVec[T]) Pop() (item T, ok bool) {
	var zero T
	if v.tailLen > 0 {
		v.tailLen--
		item, v.tail[v.tailLen] = v.tail[v.tailLen], zero
		return item, true
	}
	leaf, found := v.tree.PopLeaf()
	if !found {
		return zero, false
	}
	items := leaf.Slice()
	last := items[len(items)-1]
	copy(v.tail[:], items[:len(items)-1])
	v.tailLen = len(items) - 1
	return last, true
}

// Get returns the element at index i and whether i was in range.
func (v *RbVec[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, false
	}
	treeLen := v.tree.Len()
	if i >= treeLen {
		return v.tail[i-treeLen], true
	}
	return v.tree.Get(rrbtree.Index(i))
}

// GetMut returns a mutable pointer to the element at index i, cloning
// along the path to it if that part of the vector is shared, and whether i
// was in range.
func (v *RbVec[T]) GetMut(i int) (*T, bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	treeLen := v.tree.Len()
	if i >= treeLen {
		return &v.tail[i-treeLen], true
	}
	return v.tree.GetMut(rrbtree.Index(i))
}

// At returns the element at index i, panicking if i is out of bounds.
func (v *RbVec[T]) At(i int) T {
	item, ok := v.Get(i)
	assert(ok, outOfBoundsMsg("RbVec", i, v.Len()))
	return item
}

// SetAt replaces the element at index i, panicking if i is out of bounds.
func (v *RbVec[T]) SetAt(i int, item T) {
	p, ok := v.GetMut(i)
	assert(ok, outOfBoundsMsg("RbVec", i, v.Len()))
	*p = item
}

// Append returns a new vector holding the receiver's elements followed by
// other's, copying other's elements onto a clone of the receiver one at a
// time; neither the receiver nor other is changed. This costs
// O(len(other)), the price of never producing a relaxed node.
func (v *RbVec[T]) Append(other RbVec[T]) RbVec[T] {
	result := v.Clone()
	n := other.Len()
	for i := 0; i < n; i++ {
		item, _ := other.Get(i)
		result.Push(item)
	}
	return result
}

// SplitOff splits the vector at mid: the receiver keeps elements [0,mid)
// and the returned vector holds [mid,len). Implemented by popping elements
// off the back one at a time and re-pushing them onto a fresh vector,
// rather than splicing the tree, so the result never carries a relaxed node.
func (v *RbVec[T]) SplitOff(mid int) RbVec[T] {
	total := v.Len()
	assert(mid >= 0 && mid <= total, outOfBoundsMsg("RbVec", mid, total))

	moved := make([]T, 0, total-mid)
	for v.Len() > mid {
		item, _ := v.Pop()
		moved = append(moved, item)
	}
	right := NewRb[T]()
	for i := len(moved) - 1; i >= 0; i-- {
		right.Push(moved[i])
	}
	return right
}
