package pvec

import "github.com/go-pvec/pvec/sharedptr"

// flatThreshold is the largest length PVec keeps as a plain slice before
// switching to an RrbVec. It equals the default rrbtree.BranchFactor (one
// tail buffer's worth); the smallbranch build tag does not change it. Small
// enough that a flat vector's Clone-then-mutate (a full slice copy) stays
// cheap, large enough that most short-lived vectors never touch the tree at
// all.
const flatThreshold = 32

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// PVec adapts between two representations of the same persistent vector: a
// flat, copy-on-write slice while the vector is small, and an RrbVec once
// it outgrows one. Most of a PVec's lifetime, for most programs, is spent
// flat; the tree only earns its keep once the vector is large enough for
// full-slice-copy cloning to start costing more than it saves.
//
// The zero value is not ready for use; construct with NewP.
type PVec[T any] struct {
	isFlat bool
	flat   sharedptr.Ptr[[]T]
	tree   RrbVec[T]
}

// NewP returns an empty vector, flat until grown past flatThreshold.
func NewP[T any]() PVec[T] {
	return PVec[T]{isFlat: true, flat: sharedptr.New([]T(nil))}
}

func (v *PVec[T]) promote() {
	v.tree = FromSlice(*v.flat.Get())
	v.flat = sharedptr.Ptr[[]T]{}
	v.isFlat = false
}

// demote switches back to the flat representation once the tree has
// shrunk small enough that carrying it no longer pays for itself.
func (v *PVec[T]) demote() {
	items := make([]T, 0, v.tree.Len())
	n := v.tree.Len()
	for i := 0; i < n; i++ {
		item, _ := v.tree.Get(i)
		items = append(items, item)
	}
	v.flat = sharedptr.New(items)
	v.tree = RrbVec[T]{}
	v.isFlat = true
}

// Len reports the number of elements in the vector.
func (v *PVec[T]) Len() int {
	if v.isFlat {
		return len(*v.flat.Get())
	}
	return v.tree.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *PVec[T]) IsEmpty() bool { return v.Len() == 0 }

// Clone returns a vector sharing structure with the receiver; later
// mutating calls on either copy clone-on-write along their own path.
func (v *PVec[T]) Clone() PVec[T] {
	if v.isFlat {
		return PVec[T]{isFlat: true, flat: v.flat.Clone()}
	}
	return PVec[T]{isFlat: false, tree: v.tree.Clone()}
}

// Push appends item to the end of the vector, promoting to a tree if this
// push takes the vector past flatThreshold.
func (v *PVec[T]) Push(item T) {
	if !v.isFlat {
		v.tree.Push(item)
		return
	}
	data := v.flat.MakeMut(cloneSlice[T])
	*data = append(*data, item)
	if len(*data) > flatThreshold {
		v.promote()
	}
}

// Pop removes and returns the last element, demoting to flat if the tree
// drops back to flatThreshold or below. ok is false on an empty vector.
func (v *PVec[T]) Pop() (T, bool) {
	if v.isFlat {
		data := v.flat.MakeMut(cloneSlice[T])
		var zero T
		if len(*data) == 0 {
			return zero, false
		}
		last := (*data)[len(*data)-1]
		*data = (*data)[:len(*data)-1]
		return last, true
	}
	item, ok := v.tree.Pop()
	if ok && v.tree.Len() <= flatThreshold {
		v.demote()
	}
	return item, ok
}

// Get returns the element at index i and whether i was in range.
func (v *PVec[T]) Get(i int) (T, bool) {
	if v.isFlat {
		data := *v.flat.Get()
		var zero T
		if i < 0 || i >= len(data) {
			return zero, false
		}
		return data[i], true
	}
	return v.tree.Get(i)
}

// GetMut returns a mutable pointer to the element at index i, cloning
// along the path to it if that part of the vector is shared, and whether i
// was in range.
func (v *PVec[T]) GetMut(i int) (*T, bool) {
	if v.isFlat {
		data := v.flat.MakeMut(cloneSlice[T])
		if i < 0 || i >= len(*data) {
			return nil, false
		}
		return &(*data)[i], true
	}
	return v.tree.GetMut(i)
}

// At returns the element at index i, panicking if i is out of bounds.
func (v *PVec[T]) At(i int) T {
	item, ok := v.Get(i)
	assert(ok, outOfBoundsMsg("PVec", i, v.Len()))
	return item
}

// SetAt replaces the element at index i, panicking if i is out of bounds.
func (v *PVec[T]) SetAt(i int, item T) {
	p, ok := v.GetMut(i)
	assert(ok, outOfBoundsMsg("PVec", i, v.Len()))
	*p = item
}

// Append returns a new vector holding the receiver's elements followed by
// other's, promoting to a tree first if the combined length needs it.
func (v *PVec[T]) Append(other PVec[T]) PVec[T] {
	if v.isFlat && other.isFlat {
		combined := append(cloneSlice(*v.flat.Get()), *other.flat.Get()...)
		if len(combined) <= flatThreshold {
			return PVec[T]{isFlat: true, flat: sharedptr.New(combined)}
		}
		return PVec[T]{isFlat: false, tree: FromSlice(combined)}
	}
	left := v.Clone()
	if left.isFlat {
		left.promote()
	}
	right := other.Clone()
	if right.isFlat {
		right.promote()
	}
	return PVec[T]{isFlat: false, tree: left.tree.Append(right.tree)}
}

// SplitOff splits the vector at mid: the receiver keeps elements [0,mid)
// and the returned vector holds [mid,len), demoting either side back to
// flat if it ends up small enough. It panics if mid is out of range.
func (v *PVec[T]) SplitOff(mid int) PVec[T] {
	total := v.Len()
	assert(mid >= 0 && mid <= total, outOfBoundsMsg("PVec", mid, total))

	if v.isFlat {
		data := *v.flat.Get()
		left := cloneSlice(data[:mid])
		right := cloneSlice(data[mid:])
		v.flat = sharedptr.New(left)
		return PVec[T]{isFlat: true, flat: sharedptr.New(right)}
	}
	rightTree := v.tree.SplitOff(mid)
	if v.tree.Len() <= flatThreshold {
		v.demote()
	}
	result := PVec[T]{isFlat: false, tree: rightTree}
	if result.tree.Len() <= flatThreshold {
		result.demote()
	}
	return result
}
