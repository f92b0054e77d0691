package rrbtree

import "github.com/go-pvec/pvec/sharedptr"

type leafData[T any] struct {
	elements [BranchFactor]T
	len      uint8
}

func cloneLeafData[T any](d leafData[T]) leafData[T] {
	// elements is a fixed-size array of T, so plain assignment copies it by
	// value; no element needs its own Clone for this to be independent of
	// the original, which is what spec.md's "fixed-capacity arrays" design
	// note relies on.
	return d
}

// Leaf is a terminal node holding up to BranchFactor elements directly.
type Leaf[T any] struct {
	ptr sharedptr.Ptr[leafData[T]]
}

func newLeaf[T any]() *Leaf[T] {
	return &Leaf[T]{ptr: sharedptr.New(leafData[T]{})}
}

func leafOf[T any](items ...T) *Leaf[T] {
	l := newLeaf[T]()
	d := l.ptr.Get()
	for _, it := range items {
		d.elements[d.len] = it
		d.len++
	}
	return l
}

// LeafFrom builds a standalone leaf from items, for callers (the pvec
// vector types) that assemble a full tail buffer before pushing it into
// the tree as a unit.
func LeafFrom[T any](items ...T) *Leaf[T] {
	return leafOf(items...)
}

func (l *Leaf[T]) Len() int { return int(l.ptr.Get().len) }

// Slice returns a copy of the leaf's occupied elements in order.
func (l *Leaf[T]) Slice() []T {
	d := l.ptr.Get()
	out := make([]T, d.len)
	copy(out, d.elements[:d.len])
	return out
}

func (l *Leaf[T]) Clone() Node[T] {
	return &Leaf[T]{ptr: l.ptr.Clone()}
}

func (l *Leaf[T]) isRelaxed() bool { return false }

func (l *Leaf[T]) isFull() bool { return l.Len() == BranchFactor }

func (l *Leaf[T]) isEmpty() bool { return l.Len() == 0 }

// get returns the element at slot i (already masked by element(idx)).
func (l *Leaf[T]) get(i int) *T {
	return &l.ptr.Get().elements[i]
}

// getMut returns a mutable pointer to slot i, cloning the leaf first if it
// is shared.
func (l *Leaf[T]) getMut(i int) *T {
	d := l.ptr.MakeMut(cloneLeafData[T])
	return &d.elements[i]
}

// add appends v, growing the leaf in place if uniquely owned.
func (l *Leaf[T]) add(v T) {
	assert(!l.isFull(), "add on a full leaf")
	d := l.ptr.MakeMut(cloneLeafData[T])
	d.elements[d.len] = v
	d.len++
}

// take removes and returns the last element.
func (l *Leaf[T]) take() T {
	assert(!l.isEmpty(), "take on an empty leaf")
	d := l.ptr.MakeMut(cloneLeafData[T])
	d.len--
	v := d.elements[d.len]
	var zero T
	d.elements[d.len] = zero
	return v
}

// splitRightAt splits the leaf at position i: the receiver keeps [0,i) and
// a new leaf holding [i,len) is returned.
func (l *Leaf[T]) splitRightAt(i int) *Leaf[T] {
	d := l.ptr.Get()
	right := newLeaf[T]()
	rd := right.ptr.Get()
	for j := i; j < int(d.len); j++ {
		rd.elements[rd.len] = d.elements[j]
		rd.len++
	}
	ld := l.ptr.MakeMut(cloneLeafData[T])
	var zero T
	for j := i; j < int(ld.len); j++ {
		ld.elements[j] = zero
	}
	ld.len = uint8(i)
	return right
}

// merge combines two undersized leaves. If the total fits in one leaf, the
// second return value is nil; otherwise the first leaf is returned full and
// the second holds the remainder, matching the Rust original's Leaf::merge,
// which never produces more than two leaves out of two inputs.
func mergeLeaves[T any](left, right *Leaf[T]) (*Leaf[T], *Leaf[T]) {
	ld, rd := left.ptr.Get(), right.ptr.Get()
	total := int(ld.len) + int(rd.len)
	if total <= BranchFactor {
		merged := newLeaf[T]()
		md := merged.ptr.Get()
		for i := 0; i < int(ld.len); i++ {
			md.elements[md.len] = ld.elements[i]
			md.len++
		}
		for i := 0; i < int(rd.len); i++ {
			md.elements[md.len] = rd.elements[i]
			md.len++
		}
		return merged, nil
	}

	all := make([]T, 0, total)
	for i := 0; i < int(ld.len); i++ {
		all = append(all, ld.elements[i])
	}
	for i := 0; i < int(rd.len); i++ {
		all = append(all, rd.elements[i])
	}
	return leafOf(all[:BranchFactor]...), leafOf(all[BranchFactor:]...)
}
