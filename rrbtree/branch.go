package rrbtree

import "github.com/go-pvec/pvec/sharedptr"

type branchData[T any] struct {
	children [BranchFactor]Node[T]
	len      uint8
}

func cloneBranchData[T any](d branchData[T]) branchData[T] {
	var out branchData[T]
	out.len = d.len
	for i := 0; i < int(d.len); i++ {
		out.children[i] = d.children[i].Clone()
	}
	return out
}

// Branch is a dense inner node: every child but the last is assumed full,
// so no size table is carried. A Branch that gains an unevenly-sized child
// (through concatenation or split) is rebuilt as a RelaxedBranch instead.
//
// Len is deliberately not cached: it is recomputed by summing children's
// own Len(), which recurses down to the leaves, so its cost grows with the
// number of nodes in the subtree. This sidesteps having to thread length
// deltas back up through in-place descendant mutation.
type Branch[T any] struct {
	ptr sharedptr.Ptr[branchData[T]]
}

func newBranch[T any]() *Branch[T] {
	return &Branch[T]{ptr: sharedptr.New(branchData[T]{})}
}

func (b *Branch[T]) Len() int {
	d := b.ptr.Get()
	total := 0
	for i := 0; i < int(d.len); i++ {
		total += d.children[i].Len()
	}
	return total
}

func (b *Branch[T]) Clone() Node[T] {
	return &Branch[T]{ptr: b.ptr.Clone()}
}

func (b *Branch[T]) isRelaxed() bool { return false }

func (b *Branch[T]) isFull() bool { return int(b.ptr.Get().len) == BranchFactor }

func (b *Branch[T]) childCount() int { return int(b.ptr.Get().len) }

func (b *Branch[T]) childAt(i int) Node[T] { return b.ptr.Get().children[i] }

func (b *Branch[T]) sizeAt(shift Shift, i int) int {
	d := b.ptr.Get()
	total := 0
	for j := 0; j <= i; j++ {
		total += d.children[j].Len()
	}
	return total
}

// pushChild appends a fresh child, cloning the node first if shared.
func (b *Branch[T]) pushChild(child Node[T]) {
	assert(!b.isFull(), "pushChild on a full branch")
	d := b.ptr.MakeMut(cloneBranchData[T])
	d.children[d.len] = child
	d.len++
}

// popChild removes and returns the last child.
func (b *Branch[T]) popChild() Node[T] {
	assert(int(b.ptr.Get().len) > 0, "popChild on an empty branch")
	d := b.ptr.MakeMut(cloneBranchData[T])
	d.len--
	child := d.children[d.len]
	d.children[d.len] = nil
	return child
}

// lastChild returns the rightmost child without removing it.
func (b *Branch[T]) lastChild() Node[T] {
	d := b.ptr.Get()
	return d.children[d.len-1]
}

// childAtMut forks the branch first if it is shared, then returns the
// child at i from the now-exclusively-owned data. Callers that are about to
// recurse into a child to mutate it must fetch it this way, not via
// childAt, so the copy-on-write path extends all the way down.
func (b *Branch[T]) childAtMut(i int) Node[T] {
	d := b.ptr.MakeMut(cloneBranchData[T])
	return d.children[i]
}

// lastChildMut is childAtMut for the rightmost child.
func (b *Branch[T]) lastChildMut() Node[T] {
	d := b.ptr.MakeMut(cloneBranchData[T])
	return d.children[d.len-1]
}

// replaceLastChild swaps the rightmost child for a new handle.
func (b *Branch[T]) replaceLastChild(child Node[T]) {
	d := b.ptr.MakeMut(cloneBranchData[T])
	d.children[d.len-1] = child
}

// pushChildFront inserts child at the front, shifting the rest right.
func (b *Branch[T]) pushChildFront(child Node[T]) {
	assert(!b.isFull(), "pushChildFront on a full branch")
	d := b.ptr.MakeMut(cloneBranchData[T])
	for j := int(d.len); j > 0; j-- {
		d.children[j] = d.children[j-1]
	}
	d.children[0] = child
	d.len++
}

// splitRightAt splits a branch at child index i: the receiver keeps
// children [0,i) and a new branch holding [i,len) is returned.
func (b *Branch[T]) splitRightAt(i int) *Branch[T] {
	d := b.ptr.Get()
	right := newBranch[T]()
	rd := right.ptr.Get()
	for j := i; j < int(d.len); j++ {
		rd.children[rd.len] = d.children[j]
		rd.len++
	}
	ld := b.ptr.MakeMut(cloneBranchData[T])
	for j := i; j < int(ld.len); j++ {
		ld.children[j] = nil
	}
	ld.len = uint8(i)
	return right
}
