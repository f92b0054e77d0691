package rrbtree

// RrbTree is the engine beneath RrbVec/RbVec. The vector types push only
// full leaves into it (their own tail buffer lives outside the tree and is
// only pushed in, a whole leaf at a time, once it fills); SplitRightAt and
// Append can leave partially filled leaves in the tree. The zero value is
// not ready for use; construct with New.
type RrbTree[T any] struct {
	root  Node[T]
	shift Shift
}

// New returns an empty tree.
func New[T any]() RrbTree[T] {
	return RrbTree[T]{root: newLeaf[T](), shift: 0}
}

// Len reports the total element count reachable under the tree.
func (t *RrbTree[T]) Len() int { return t.root.Len() }

// IsRootLeaf reports whether the tree is zero or one leaf tall.
func (t *RrbTree[T]) IsRootLeaf() bool { return t.shift == 0 }

// IsEmpty reports whether the tree holds no elements.
func (t *RrbTree[T]) IsEmpty() bool { return t.Len() == 0 }

// Clone returns a tree sharing structure with the receiver; later mutating
// calls on either copy clone-on-write along their own path.
func (t *RrbTree[T]) Clone() RrbTree[T] {
	return RrbTree[T]{root: t.root.Clone(), shift: t.shift}
}

// Get returns the element at index i and whether i was in range.
func (t *RrbTree[T]) Get(i Index) (T, bool) {
	var zero T
	if i < 0 || int(i) >= t.Len() {
		return zero, false
	}
	return *getNode(t.root, t.shift, i), true
}

// GetMut returns a mutable pointer to the element at index i, cloning
// along the path to it if that part of the tree is shared, and whether i
// was in range.
func (t *RrbTree[T]) GetMut(i Index) (*T, bool) {
	if i < 0 || int(i) >= t.Len() {
		return nil, false
	}
	return getMutNode(t.root, t.shift, i), true
}

func getNode[T any](node Node[T], shift Shift, i Index) *T {
	if shift.isLeafLevel() {
		return node.(*Leaf[T]).get(element(i))
	}
	child, rel := descend(node, shift, i)
	return getNode(child, shift.dec(), rel)
}

func getMutNode[T any](node Node[T], shift Shift, i Index) *T {
	if shift.isLeafLevel() {
		return node.(*Leaf[T]).getMut(element(i))
	}
	child, rel := descendMut(node, shift, i)
	return getMutNode(child, shift.dec(), rel)
}

// descend returns the child of node that index i falls into, and i's
// position relative to that child's own range. It is read-only: use it only
// when the caller will not mutate anything reached through the result.
func descend[T any](node Node[T], shift Shift, i Index) (Node[T], Index) {
	switch n := node.(type) {
	case *RelaxedBranch[T]:
		slot, rel := n.findChild(i)
		return n.childAt(slot), rel
	case *Branch[T]:
		slot := shift.child(i)
		rel := i - Index(slot)*Index(capacityAt(shift.dec()))
		return n.childAt(slot), rel
	}
	panic("rrbtree: descend called on a leaf")
}

// descendMut is descend's copy-on-write counterpart: it forks node first if
// node is shared, so the child it returns is safe to mutate (and to recurse
// into for further descendMut calls) without corrupting any other tree that
// shares node's box.
func descendMut[T any](node Node[T], shift Shift, i Index) (Node[T], Index) {
	switch n := node.(type) {
	case *RelaxedBranch[T]:
		slot, rel := n.findChild(i)
		return n.childAtMut(slot), rel
	case *Branch[T]:
		slot := shift.child(i)
		rel := i - Index(slot)*Index(capacityAt(shift.dec()))
		return n.childAtMut(slot), rel
	}
	panic("rrbtree: descend called on a leaf")
}

// hasRoomForLeaf reports whether a new leaf can be pushed under node
// (rooted at shift) without growing the tree's height.
func hasRoomForLeaf[T any](node Node[T], shift Shift) bool {
	in, ok := asInner[T](node)
	if !ok {
		return false
	}
	if in.childCount() < BranchFactor {
		return true
	}
	if shift.isLevelWithLeaves() {
		return false
	}
	return hasRoomForLeaf(in.childAt(in.childCount()-1), shift.dec())
}

// wrapAsPath wraps leaf in single-child branches until it sits at the
// bottom of a subtree of height shift.
func wrapAsPath[T any](leaf *Leaf[T], shift Shift) Node[T] {
	var n Node[T] = leaf
	for s := Shift(0); s < shift; s = s.inc() {
		b := newBranch[T]()
		b.pushChild(n)
		n = b
	}
	return n
}

// pushLeafRec pushes leaf as far right as capacity allows under node,
// mutating in place. Callers must already know node has room (via
// hasRoomForLeaf) at shift.
func pushLeafRec[T any](node Node[T], shift Shift, leaf *Leaf[T]) {
	if shift.isLevelWithLeaves() {
		switch n := node.(type) {
		case *RelaxedBranch[T]:
			n.pushChild(leaf)
		case *Branch[T]:
			n.pushChild(leaf)
		}
		return
	}
	switch n := node.(type) {
	case *RelaxedBranch[T]:
		if n.childCount() > 0 && hasRoomForLeaf(n.lastChild(), shift.dec()) {
			pushLeafRec(n.lastChildMut(), shift.dec(), leaf)
		} else {
			n.pushChild(wrapAsPath(leaf, shift.dec()))
		}
	case *Branch[T]:
		if n.childCount() > 0 && hasRoomForLeaf(n.lastChild(), shift.dec()) {
			pushLeafRec(n.lastChildMut(), shift.dec(), leaf)
		} else {
			n.pushChild(wrapAsPath(leaf, shift.dec()))
		}
	}
}

// PushLeaf appends a full leaf to the tree, growing its height if the
// rightmost path has no remaining room.
func (t *RrbTree[T]) PushLeaf(leaf *Leaf[T]) {
	if t.IsEmpty() && t.shift == 0 {
		t.root = leaf
		return
	}
	if t.shift == 0 {
		t.root = growRoot[T](t.root, leaf)
		t.shift = t.shift.inc()
		return
	}
	if hasRoomForLeaf(t.root, t.shift) {
		pushLeafRec(t.root, t.shift, leaf)
		return
	}
	t.root = growRoot[T](t.root, wrapAsPath(leaf, t.shift))
	t.shift = t.shift.inc()
}

// growRoot builds the new root that results from adding a second top-level
// child above oldRoot: a RelaxedBranch if oldRoot itself is relaxed (an
// uneven child under a strict Branch would break its "every child but the
// last is full" assumption), a Branch otherwise.
func growRoot[T any](oldRoot, newChild Node[T]) Node[T] {
	if oldRoot.isRelaxed() {
		rb := newRelaxedBranch[T]()
		rb.pushChild(oldRoot)
		rb.pushChild(newChild)
		return rb
	}
	b := newBranch[T]()
	b.pushChild(oldRoot)
	b.pushChild(newChild)
	return b
}

// popLeafRec removes and returns the rightmost leaf under node, mutating
// in place. It reports whether node itself became empty and should be
// dropped by its caller.
func popLeafRec[T any](node Node[T], shift Shift) (*Leaf[T], bool) {
	if shift.isLevelWithLeaves() {
		switch n := node.(type) {
		case *RelaxedBranch[T]:
			leaf := n.popChild().(*Leaf[T])
			return leaf, n.childCount() == 0
		case *Branch[T]:
			leaf := n.popChild().(*Leaf[T])
			return leaf, n.childCount() == 0
		}
	}
	switch n := node.(type) {
	case *RelaxedBranch[T]:
		last := n.lastChildMut()
		leaf, drained := popLeafRec(last, shift.dec())
		if drained {
			n.popChild()
		}
		return leaf, n.childCount() == 0
	case *Branch[T]:
		last := n.lastChildMut()
		leaf, drained := popLeafRec(last, shift.dec())
		if drained {
			n.popChild()
		}
		return leaf, n.childCount() == 0
	}
	panic("rrbtree: popLeafRec called on a leaf")
}

// PopLeaf removes and returns the rightmost leaf, collapsing the root
// downward when height is no longer needed. ok is false on an empty tree.
func (t *RrbTree[T]) PopLeaf() (leaf *Leaf[T], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	if t.shift == 0 {
		l := t.root.(*Leaf[T])
		t.root = newLeaf[T]()
		return l, true
	}
	leaf, drained := popLeafRec(t.root, t.shift)
	_ = drained
	t.root = normalizeRoot(t.root, &t.shift)
	return leaf, true
}

// normalizeRoot collapses a root that has only a single child down to that
// child, decrementing shift to match, repeating until the root is either a
// leaf or genuinely branches.
func normalizeRoot[T any](root Node[T], shift *Shift) Node[T] {
	for *shift > 0 {
		in, ok := asInner[T](root)
		if !ok || in.childCount() != 1 {
			break
		}
		root = in.childAt(0)
		*shift = shift.dec()
	}
	return root
}

// Append concatenates other onto the end of the receiver's tree, returning
// the combined tree. Trees of different heights are merged by descending
// the taller one down to the shorter one's shift before meeting in the
// middle, mirroring the original's recursive concatenation.
func (t *RrbTree[T]) Append(other RrbTree[T]) RrbTree[T] {
	if t.IsEmpty() {
		return other.Clone()
	}
	if other.IsEmpty() {
		return t.Clone()
	}
	shift := t.shift
	if other.shift > shift {
		shift = other.shift
	}
	left := liftTo(t.root.Clone(), t.shift, shift)
	right := liftTo(other.root.Clone(), other.shift, shift)

	merged := concatNodes[T](left, right, shift) // nodes fit to be children at shift
	for len(merged) > BranchFactor {
		merged = packChildren(merged, shift)
		shift = shift.inc()
	}

	var root Node[T]
	var rootShift Shift
	if len(merged) == 1 {
		root, rootShift = merged[0], shift
	} else {
		if isDenselyPacked(merged, shift) {
			b := newBranch[T]()
			for _, n := range merged {
				b.pushChild(n)
			}
			root = b
		} else {
			rb := newRelaxedBranch[T]()
			for _, n := range merged {
				rb.pushChild(n)
			}
			root = rb
		}
		rootShift = shift.inc()
	}

	result := RrbTree[T]{root: root, shift: rootShift}
	result.root = normalizeRoot(result.root, &result.shift)
	return result
}

// liftTo wraps node in single-child parents until it reaches target shift.
func liftTo[T any](node Node[T], shift, target Shift) Node[T] {
	for shift < target {
		b := newBranch[T]()
		b.pushChild(node)
		node = b
		shift = shift.inc()
	}
	return node
}

// concatNodes returns the rebalanced list of nodes, at shift, produced by
// joining left and right at their shared boundary.
func concatNodes[T any](left, right Node[T], shift Shift) []Node[T] {
	if shift.isLeafLevel() {
		return rebalanceChildren[T]([]Node[T]{left, right}, shift)
	}
	li, lok := asInner[T](left)
	ri, rok := asInner[T](right)
	assert(lok && rok, "concatNodes: non-leaf level holds non-inner node")

	mid := concatNodes[T](li.childAt(li.childCount()-1).Clone(), ri.childAt(0).Clone(), shift.dec())

	all := make([]Node[T], 0, li.childCount()+ri.childCount()+len(mid))
	for i := 0; i < li.childCount()-1; i++ {
		all = append(all, li.childAt(i).Clone())
	}
	all = append(all, mid...)
	for i := 1; i < ri.childCount(); i++ {
		all = append(all, ri.childAt(i).Clone())
	}
	// all holds nodes at shift.dec(); repack them into parents at shift so
	// the result matches this function's contract (nodes fit to be children
	// of a parent at shift.inc()).
	return packChildren(rebalanceChildren(all, shift.dec()), shift.dec())
}

// SplitRightAt splits the tree at index i: the receiver keeps elements
// [0,i) and the returned tree holds elements [i,len).
func (t *RrbTree[T]) SplitRightAt(i Index) RrbTree[T] {
	assert(int(i) >= 0 && int(i) <= t.Len(), "SplitRightAt index out of range")
	if int(i) == t.Len() {
		return New[T]()
	}
	if i == 0 {
		old := *t
		*t = New[T]()
		return old
	}
	rightRoot, rightShift := splitNode(t.root, t.shift, i)
	t.root = normalizeRoot(t.root, &t.shift)
	right := RrbTree[T]{root: rightRoot, shift: rightShift}
	right.root = normalizeRoot(right.root, &right.shift)
	return right
}

// splitNode splits node (rooted at shift) at index i, mutating node in
// place to keep [0,i) and returning a node holding [i,len) at the same
// shift.
func splitNode[T any](node Node[T], shift Shift, i Index) (Node[T], Shift) {
	if shift.isLeafLevel() {
		leaf := node.(*Leaf[T])
		return leaf.splitRightAt(int(i)), shift
	}
	var slot int
	var rel Index
	switch n := node.(type) {
	case *RelaxedBranch[T]:
		slot, rel = n.findChild(i)
	case *Branch[T]:
		slot = shift.child(i)
		rel = i - Index(slot)*Index(capacityAt(shift.dec()))
	}
	in, _ := asInner[T](node)
	childRightPart, childRightShift := splitNode(in.childAtMut(slot), shift.dec(), rel)
	_ = childRightShift

	// After splitNode mutates the child at slot in place to hold only its
	// left portion, that child belongs to the left side iff it still holds
	// anything; otherwise the whole split landed on a child boundary, the
	// emptied child is dropped and slot's contents move to the right side
	// wholesale as childRightPart.
	dropLeft := in.childAt(slot).Len() == 0

	switch n := node.(type) {
	case *RelaxedBranch[T]:
		right := n.splitRightAt(slot + 1)
		if dropLeft {
			n.popChild()
		}
		if childRightPart.Len() > 0 {
			right.pushChildFront(childRightPart)
		}
		return right, shift
	case *Branch[T]:
		right := n.splitRightAt(slot + 1)
		if dropLeft {
			n.popChild()
		}
		rbRight := relaxedFrom(right)
		if childRightPart.Len() > 0 {
			rbRight.pushChildFront(childRightPart)
		}
		return rbRight, shift
	}
	panic("rrbtree: splitNode on unknown node type")
}
