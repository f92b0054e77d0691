package rrbtree

import "testing"

func fullLeaf(start int) *Leaf[int] {
	items := make([]int, BranchFactor)
	for i := range items {
		items[i] = start + i
	}
	return leafOf(items...)
}

func buildTree(t *testing.T, leaves int) RrbTree[int] {
	t.Helper()
	tree := New[int]()
	for i := 0; i < leaves; i++ {
		tree.PushLeaf(fullLeaf(i * BranchFactor))
	}
	return tree
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	if !tree.IsEmpty() {
		t.Fatal("fresh tree should be empty")
	}
	if _, ok := tree.Get(0); ok {
		t.Fatal("Get on an empty tree should report out of range")
	}
}

func TestPushLeafAndGet(t *testing.T) {
	tree := buildTree(t, BranchFactor+2)
	if got, want := tree.Len(), (BranchFactor+2)*BranchFactor; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i := 0; i < tree.Len(); i++ {
		v, ok := tree.Get(Index(i))
		if !ok || v != i {
			t.Fatalf("Get(%d) = %d,%v want %d,true", i, v, ok, i)
		}
	}
}

func TestPushLeafGrowsHeight(t *testing.T) {
	tree := buildTree(t, BranchFactor*BranchFactor+1)
	if tree.shift == 0 {
		t.Fatal("tree with more than BranchFactor^2 leaves should not be a single level")
	}
}

func TestPopLeafRoundTrips(t *testing.T) {
	const leaves = BranchFactor + 3
	tree := buildTree(t, leaves)
	for i := leaves - 1; i >= 0; i-- {
		leaf, ok := tree.PopLeaf()
		if !ok {
			t.Fatalf("PopLeaf() failed with %d leaves remaining", i+1)
		}
		if leaf.Len() != BranchFactor {
			t.Fatalf("PopLeaf() returned a leaf of length %d, want %d", leaf.Len(), BranchFactor)
		}
		if got, want := tree.Len(), i*BranchFactor; got != want {
			t.Fatalf("after pop, Len() = %d, want %d", got, want)
		}
	}
	if !tree.IsEmpty() {
		t.Fatal("tree should be empty after popping every leaf")
	}
	if _, ok := tree.PopLeaf(); ok {
		t.Fatal("PopLeaf on an empty tree should fail")
	}
}

func TestGetMutIsIsolatedAfterClone(t *testing.T) {
	tree := buildTree(t, BranchFactor+1)
	snapshot := tree.Clone()

	p, ok := tree.GetMut(0)
	if !ok {
		t.Fatal("GetMut(0) should succeed")
	}
	*p = -1

	v, _ := tree.Get(0)
	if v != -1 {
		t.Fatalf("mutation through GetMut should be visible on tree, got %d", v)
	}
	sv, _ := snapshot.Get(0)
	if sv != 0 {
		t.Fatalf("snapshot should be unaffected by tree's mutation, got %d", sv)
	}
}

func TestPushPopLeaveCloneIsolatedOnTallTree(t *testing.T) {
	const leaves = BranchFactor + 3 // height 2, so the push/pop path descends through a Branch
	tree := buildTree(t, leaves)
	snapshot := tree.Clone()

	tree.PushLeaf(fullLeaf(leaves * BranchFactor))
	if got, want := snapshot.Len(), leaves*BranchFactor; got != want {
		t.Fatalf("snapshot.Len() = %d, want %d after pushing onto tree", got, want)
	}

	popped, ok := tree.PopLeaf()
	if !ok || popped.Len() != BranchFactor {
		t.Fatalf("PopLeaf() = %v,%v, want a full leaf", popped, ok)
	}
	if got, want := snapshot.Len(), leaves*BranchFactor; got != want {
		t.Fatalf("snapshot.Len() = %d, want %d after popping from tree", got, want)
	}
	for i := 0; i < snapshot.Len(); i++ {
		v, ok := snapshot.Get(Index(i))
		if !ok || v != i {
			t.Fatalf("snapshot[%d] = %d,%v want %d,true", i, v, ok, i)
		}
	}
}

func TestAppendConcatenatesInOrder(t *testing.T) {
	left := buildTree(t, 2)
	right := buildTree(t, 3)
	combined := left.Append(right)

	if got, want := combined.Len(), left.Len()+right.Len(); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	// buildTree numbers every tree from 0, so right's elements restart at 0
	// once left's are exhausted.
	for i := 0; i < combined.Len(); i++ {
		want := i
		if i >= left.Len() {
			want = i - left.Len()
		}
		v, ok := combined.Get(Index(i))
		if !ok || v != want {
			t.Fatalf("Get(%d) = %d,%v want %d,true", i, v, ok, want)
		}
	}
}

func TestAppendOntoOrFromEmpty(t *testing.T) {
	empty := New[int]()
	full := buildTree(t, 2)

	if got := empty.Append(full); got.Len() != full.Len() {
		t.Fatalf("appending onto an empty tree should just return the other tree")
	}
	if got := full.Append(empty); got.Len() != full.Len() {
		t.Fatalf("appending an empty tree should be a no-op")
	}
}

func TestSplitRightAtPreservesOrderOnBothSides(t *testing.T) {
	tree := buildTree(t, 3)
	mid := Index(tree.Len() / 2)
	right := tree.SplitRightAt(mid)

	if got, want := tree.Len(), int(mid); got != want {
		t.Fatalf("left half Len() = %d, want %d", got, want)
	}
	if got, want := right.Len(), (3*BranchFactor)-int(mid); got != want {
		t.Fatalf("right half Len() = %d, want %d", got, want)
	}
	for i := 0; i < tree.Len(); i++ {
		v, _ := tree.Get(Index(i))
		if v != i {
			t.Fatalf("left[%d] = %d, want %d", i, v, i)
		}
	}
	for i := 0; i < right.Len(); i++ {
		v, _ := right.Get(Index(i))
		if v != i+int(mid) {
			t.Fatalf("right[%d] = %d, want %d", i, v, i+int(mid))
		}
	}
}

func TestSplitRightAtBoundaries(t *testing.T) {
	tree := buildTree(t, 2)
	n := tree.Len()

	atZero := tree.Clone()
	right := atZero.SplitRightAt(0)
	if !atZero.IsEmpty() || right.Len() != n {
		t.Fatal("splitting at 0 should move everything to the right half")
	}

	atEnd := tree.Clone()
	right = atEnd.SplitRightAt(Index(n))
	if atEnd.Len() != n || !right.IsEmpty() {
		t.Fatal("splitting at len should leave everything on the left half")
	}
}

func TestIterForwardAndBackward(t *testing.T) {
	tree := buildTree(t, 2)
	it := tree.Iter()

	front, ok := it.Next()
	if !ok || front != 0 {
		t.Fatalf("Next() = %d,%v want 0,true", front, ok)
	}
	back, ok := it.NextBack()
	if !ok || back != tree.Len()-1 {
		t.Fatalf("NextBack() = %d,%v want %d,true", back, ok, tree.Len()-1)
	}
	if it.Len() != tree.Len()-2 {
		t.Fatalf("Len() = %d, want %d", it.Len(), tree.Len()-2)
	}
}

func TestIterSplitAt(t *testing.T) {
	tree := buildTree(t, 2)
	it := tree.Iter()
	left, right := it.SplitAt(BranchFactor)

	if left.Len() != BranchFactor {
		t.Fatalf("left.Len() = %d, want %d", left.Len(), BranchFactor)
	}
	if right.Len() != tree.Len()-BranchFactor {
		t.Fatalf("right.Len() = %d, want %d", right.Len(), tree.Len()-BranchFactor)
	}
	v, _ := right.Next()
	if v != BranchFactor {
		t.Fatalf("right.Next() = %d, want %d", v, BranchFactor)
	}
}
