package pvec

import "github.com/go-pvec/pvec/rrbtree"

// RrbVec is a persistent vector that relaxes its tree's invariants (via
// RelaxedBranch nodes) when Append or SplitOff need to, so concatenation
// and split splice subtrees instead of copying every element the way a
// strictly balanced tree would force. RbVec is the strict sibling.
//
// The zero value is not ready for use; construct with New or FromSlice.
type RrbVec[T any] struct {
	tree    rrbtree.RrbTree[T]
	tail    [rrbtree.BranchFactor]T
	tailLen int
}

// New returns an empty vector.
func New[T any]() RrbVec[T] {
	return RrbVec[T]{tree: rrbtree.New[T]()}
}

// FromSlice builds a vector holding a copy of items, in order.
func FromSlice[T any](items []T) RrbVec[T] {
	v := New[T]()
	for _, it := range items {
		v.Push(it)
	}
	return v
}

// Len reports the number of elements in the vector.
func (v *RrbVec[T]) Len() int { return v.tree.Len() + v.tailLen }

// IsEmpty reports whether the vector holds no elements.
func (v *RrbVec[T]) IsEmpty() bool { return v.Len() == 0 }

// Clone returns a vector sharing structure with the receiver; later
// mutating calls on either copy clone-on-write along their own path.
func (v *RrbVec[T]) Clone() RrbVec[T] {
	return RrbVec[T]{tree: v.tree.Clone(), tail: v.tail, tailLen: v.tailLen}
}

func (v *RrbVec[T]) flushTailIfFull() {
	if v.tailLen < rrbtree.BranchFactor {
		return
	}
	v.tree.PushLeaf(rrbtree.LeafFrom(v.tail[:v.tailLen]...))
	v.tailLen = 0
}

// Push appends item to the end of the vector.
func (v *RrbVec[T]) Push(item T) {
	v.flushTailIfFull()
	v.tail[v.tailLen] = item
	v.tailLen++
}

// Pop removes and returns the last element. ok is false on an empty vector.
func (v *RrbVec[T]) Pop() (item T, ok bool) {
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
func (v *RrbVec[T]) Get(i int) (T, bool) {
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
func (v *RrbVec[T]) GetMut(i int) (*T, bool) {
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
func (v *RrbVec[T]) At(i int) T {
	item, ok := v.Get(i)
	assert(ok, outOfBoundsMsg("RrbVec", i, v.Len()))
	return item
}

// SetAt replaces the element at index i, panicking if i is out of bounds.
func (v *RrbVec[T]) SetAt(i int, item T) {
	p, ok := v.GetMut(i)
	assert(ok, outOfBoundsMsg("RrbVec", i, v.Len()))
	*p = item
}

// Append returns a new vector holding the receiver's elements followed by
// other's. Both trees are concatenated directly (the expensive part of an
// RrbVec, and the reason it exists); the receiver's tail joins its tree as
// a leaf first when other has a tree, and the combined tree's last leaf
// plus the tails are rebuilt by hand into full leaves and a fresh tail.
func (v *RrbVec[T]) Append(other RrbVec[T]) RrbVec[T] {
	result := v.Clone()
	otherCopy := other.Clone()

	if result.tailLen > 0 && !otherCopy.tree.IsEmpty() {
		tailTree := rrbtree.New[T]()
		tailTree.PushLeaf(rrbtree.LeafFrom(result.tail[:result.tailLen]...))
		result.tree = result.tree.Append(tailTree)
		result.tailLen = 0
	}
	result.tree = result.tree.Append(otherCopy.tree)

	combined := make([]T, 0, rrbtree.BranchFactor+result.tailLen+otherCopy.tailLen)
	if last, ok := result.tree.PopLeaf(); ok {
		combined = append(combined, last.Slice()...)
	}
	combined = append(combined, result.tail[:result.tailLen]...)
	combined = append(combined, otherCopy.tail[:otherCopy.tailLen]...)

	result.tailLen = 0
	for len(combined) >= rrbtree.BranchFactor {
		result.tree.PushLeaf(rrbtree.LeafFrom(combined[:rrbtree.BranchFactor]...))
		combined = combined[rrbtree.BranchFactor:]
	}
	copy(result.tail[:], combined)
	result.tailLen = len(combined)
	return result
}

// SplitOff splits the vector at mid: the receiver keeps elements [0,mid)
// and the returned vector holds [mid,len). It panics if mid is out of
// range, matching the original's ops::Index-style bounds behavior rather
// than Get's ok-pattern.
func (v *RrbVec[T]) SplitOff(mid int) RrbVec[T] {
	total := v.Len()
	assert(mid >= 0 && mid <= total, outOfBoundsMsg("RrbVec", mid, total))

	treeLen := v.tree.Len()
	if mid >= treeLen {
		rel := mid - treeLen
		var right RrbVec[T]
		right.tree = rrbtree.New[T]()
		right.tailLen = v.tailLen - rel
		copy(right.tail[:], v.tail[rel:v.tailLen])
		v.tailLen = rel
		return right
	}

	rightTree := v.tree.SplitRightAt(rrbtree.Index(mid))
	right := RrbVec[T]{tree: rightTree, tail: v.tail, tailLen: v.tailLen}
	v.tailLen = 0
	if leaf, ok := v.tree.PopLeaf(); ok {
		v.tailLen = copy(v.tail[:], leaf.Slice())
	}
	right.normalizeSingleTail()
	return right
}

// normalizeSingleTail implements the single-tail normalisation rule: a
// vector's tree never ends on a leaf so shallow it would be cheaper to
// treat as part of the tail. If the tree is a single leaf, that leaf is
// always pulled out; its elements are prepended to the existing tail, with
// the overflow (if the merge doesn't fit in one tail) pushed back in as a
// fresh full leaf.
func (v *RrbVec[T]) normalizeSingleTail() {
	if !v.tree.IsRootLeaf() || v.tree.IsEmpty() {
		return
	}
	leaf, _ := v.tree.PopLeaf()
	items := leaf.Slice()

	combined := make([]T, 0, len(items)+v.tailLen)
	combined = append(combined, items...)
	combined = append(combined, v.tail[:v.tailLen]...)

	if len(combined) <= rrbtree.BranchFactor {
		copy(v.tail[:], combined)
		v.tailLen = len(combined)
		return
	}
	v.tree.PushLeaf(rrbtree.LeafFrom(combined[:rrbtree.BranchFactor]...))
	rest := combined[rrbtree.BranchFactor:]
	copy(v.tail[:], rest)
	v.tailLen = len(rest)
}
