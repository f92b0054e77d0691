package rrbtree

import "github.com/go-pvec/pvec/sharedptr"

type relaxedBranchData[T any] struct {
	children [BranchFactor]Node[T]
	len      uint8
}

func cloneRelaxedBranchData[T any](d relaxedBranchData[T]) relaxedBranchData[T] {
	var out relaxedBranchData[T]
	out.len = d.len
	for i := 0; i < int(d.len); i++ {
		out.children[i] = d.children[i].Clone()
	}
	return out
}

// RelaxedBranch is an inner node whose children may be less than full.
// Indexing walks a cumulative size prefix computed on demand over its
// (at most BranchFactor) children rather than a persisted size table. Each
// child's Len() recurses down to its leaves, so this costs more than a
// table scan would, but it can never go stale the way a cached table would
// after a descendant is mutated in place.
type RelaxedBranch[T any] struct {
	ptr sharedptr.Ptr[relaxedBranchData[T]]
}

func newRelaxedBranch[T any]() *RelaxedBranch[T] {
	return &RelaxedBranch[T]{ptr: sharedptr.New(relaxedBranchData[T]{})}
}

// relaxedFrom rebuilds a dense Branch's children into a relaxed node,
// without touching the children themselves.
func relaxedFrom[T any](b *Branch[T]) *RelaxedBranch[T] {
	rb := newRelaxedBranch[T]()
	d := rb.ptr.Get()
	bd := b.ptr.Get()
	for i := 0; i < int(bd.len); i++ {
		d.children[i] = bd.children[i].Clone()
	}
	d.len = bd.len
	return rb
}

func (rb *RelaxedBranch[T]) Len() int {
	d := rb.ptr.Get()
	total := 0
	for i := 0; i < int(d.len); i++ {
		total += d.children[i].Len()
	}
	return total
}

func (rb *RelaxedBranch[T]) Clone() Node[T] {
	return &RelaxedBranch[T]{ptr: rb.ptr.Clone()}
}

func (rb *RelaxedBranch[T]) isRelaxed() bool { return true }

func (rb *RelaxedBranch[T]) isFull() bool { return int(rb.ptr.Get().len) == BranchFactor }

func (rb *RelaxedBranch[T]) childCount() int { return int(rb.ptr.Get().len) }

func (rb *RelaxedBranch[T]) childAt(i int) Node[T] { return rb.ptr.Get().children[i] }

func (rb *RelaxedBranch[T]) sizeAt(_ Shift, i int) int {
	d := rb.ptr.Get()
	total := 0
	for j := 0; j <= i; j++ {
		total += d.children[j].Len()
	}
	return total
}

// findChild returns the slot whose range covers index i, and the index
// relative to the start of that child's range.
func (rb *RelaxedBranch[T]) findChild(i Index) (slot int, rel Index) {
	d := rb.ptr.Get()
	running := 0
	for slot = 0; slot < int(d.len)-1; slot++ {
		next := running + d.children[slot].Len()
		if int(i) < next {
			break
		}
		running = next
	}
	return slot, i - Index(running)
}

func (rb *RelaxedBranch[T]) pushChild(child Node[T]) {
	assert(!rb.isFull(), "pushChild on a full relaxed branch")
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	d.children[d.len] = child
	d.len++
}

func (rb *RelaxedBranch[T]) popChild() Node[T] {
	assert(int(rb.ptr.Get().len) > 0, "popChild on an empty relaxed branch")
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	d.len--
	child := d.children[d.len]
	d.children[d.len] = nil
	return child
}

func (rb *RelaxedBranch[T]) lastChild() Node[T] {
	d := rb.ptr.Get()
	return d.children[d.len-1]
}

// childAtMut forks the node first if it is shared, then returns the child
// at i from the now-exclusively-owned data. Callers that are about to
// recurse into a child to mutate it must fetch it this way, not via
// childAt, so the copy-on-write path extends all the way down.
func (rb *RelaxedBranch[T]) childAtMut(i int) Node[T] {
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	return d.children[i]
}

// lastChildMut is childAtMut for the rightmost child.
func (rb *RelaxedBranch[T]) lastChildMut() Node[T] {
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	return d.children[d.len-1]
}

func (rb *RelaxedBranch[T]) replaceLastChild(child Node[T]) {
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	d.children[d.len-1] = child
}

// pushChildFront inserts child at the front, shifting the rest right.
func (rb *RelaxedBranch[T]) pushChildFront(child Node[T]) {
	assert(!rb.isFull(), "pushChildFront on a full relaxed branch")
	d := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	for j := int(d.len); j > 0; j-- {
		d.children[j] = d.children[j-1]
	}
	d.children[0] = child
	d.len++
}

func (rb *RelaxedBranch[T]) splitRightAt(i int) *RelaxedBranch[T] {
	d := rb.ptr.Get()
	right := newRelaxedBranch[T]()
	rd := right.ptr.Get()
	for j := i; j < int(d.len); j++ {
		rd.children[rd.len] = d.children[j]
		rd.len++
	}
	ld := rb.ptr.MakeMut(cloneRelaxedBranchData[T])
	for j := i; j < int(ld.len); j++ {
		ld.children[j] = nil
	}
	ld.len = uint8(i)
	return right
}
