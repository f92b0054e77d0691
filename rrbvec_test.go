package pvec

import (
	"math/rand"
	"testing"

	"github.com/go-pvec/pvec/rrbtree"
)

func TestRrbVecPushGetRoundTrips(t *testing.T) {
	const n = rrbtree.BranchFactor*3 + 7
	v := New[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	if v.Len() != n {
		t.Fatalf("Len() = %d, want %d", v.Len(), n)
	}
	for i := 0; i < n; i++ {
		got, ok := v.Get(i)
		if !ok || got != i {
			t.Fatalf("Get(%d) = %d,%v want %d,true", i, got, ok, i)
		}
	}
	if _, ok := v.Get(n); ok {
		t.Fatal("Get(len) should be out of range")
	}
}

func TestRrbVecPopIsLifo(t *testing.T) {
	const n = rrbtree.BranchFactor + 5
	v := New[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	for i := n - 1; i >= 0; i-- {
		got, ok := v.Pop()
		if !ok || got != i {
			t.Fatalf("Pop() = %d,%v want %d,true", got, ok, i)
		}
	}
	if !v.IsEmpty() {
		t.Fatal("vector should be empty after popping everything pushed")
	}
	if _, ok := v.Pop(); ok {
		t.Fatal("Pop on an empty vector should fail")
	}
}

func TestRrbVecCloneIsolatesMutation(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	snapshot := v.Clone()

	v.SetAt(0, 99)
	v.Push(4)

	if got := snapshot.At(0); got != 1 {
		t.Fatalf("snapshot.At(0) = %d, want 1 (snapshot must not see v's mutation)", got)
	}
	if snapshot.Len() != 3 {
		t.Fatalf("snapshot.Len() = %d, want 3", snapshot.Len())
	}
	if v.At(0) != 99 || v.Len() != 4 {
		t.Fatalf("v should reflect its own mutations: At(0)=%d Len()=%d", v.At(0), v.Len())
	}
}

func TestRrbVecAtPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("At should panic on an out-of-bounds index")
		}
	}()
	v := FromSlice([]int{1, 2, 3})
	v.At(3)
}

func TestRrbVecAppendPreservesOrder(t *testing.T) {
	left := FromSlice([]int{0, 1, 2})
	right := FromSlice(makeRange(3, rrbtree.BranchFactor*2))

	combined := left.Append(right)
	want := rrbtree.BranchFactor * 2

	if combined.Len() != want {
		t.Fatalf("Len() = %d, want %d", combined.Len(), want)
	}
	for i := 0; i < combined.Len(); i++ {
		got, _ := combined.Get(i)
		if got != i {
			t.Fatalf("Get(%d) = %d, want %d", i, got, i)
		}
	}
}

func makeRange(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func TestRrbVecSplitOffPreservesOrderOnBothSides(t *testing.T) {
	const n = rrbtree.BranchFactor*2 + 11
	v := FromSlice(makeRange(0, n))

	mid := n / 3
	right := v.SplitOff(mid)

	if v.Len() != mid {
		t.Fatalf("left.Len() = %d, want %d", v.Len(), mid)
	}
	if right.Len() != n-mid {
		t.Fatalf("right.Len() = %d, want %d", right.Len(), n-mid)
	}
	for i := 0; i < v.Len(); i++ {
		got, _ := v.Get(i)
		if got != i {
			t.Fatalf("left[%d] = %d, want %d", i, got, i)
		}
	}
	for i := 0; i < right.Len(); i++ {
		got, _ := right.Get(i)
		if got != i+mid {
			t.Fatalf("right[%d] = %d, want %d", i, got, i+mid)
		}
	}
}

func TestRrbVecSplitOffInsideTail(t *testing.T) {
	// A split point inside the tail buffer leaves the right half holding
	// only the last two elements, all in its tail; it should still behave
	// like a normal vector afterwards, so a further push lands at index 2.
	v := FromSlice(makeRange(0, rrbtree.BranchFactor*4))
	right := v.SplitOff(rrbtree.BranchFactor*4 - 2)

	if right.Len() != 2 {
		t.Fatalf("right.Len() = %d, want 2", right.Len())
	}
	right.Push(100)
	if got, ok := right.Get(2); !ok || got != 100 {
		t.Fatalf("Get(2) after push = %d,%v want 100,true", got, ok)
	}
}

func TestRrbVecRandomizedAgainstSlice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var model []int
	v := New[int]()

	for step := 0; step < 2000; step++ {
		switch rng.Intn(3) {
		case 0:
			x := rng.Intn(1000)
			model = append(model, x)
			v.Push(x)
		case 1:
			if len(model) > 0 {
				want := model[len(model)-1]
				model = model[:len(model)-1]
				got, ok := v.Pop()
				if !ok || got != want {
					t.Fatalf("step %d: Pop() = %d,%v want %d,true", step, got, ok, want)
				}
			}
		case 2:
			if len(model) > 0 {
				i := rng.Intn(len(model))
				got, ok := v.Get(i)
				if !ok || got != model[i] {
					t.Fatalf("step %d: Get(%d) = %d,%v want %d,true", step, i, got, ok, model[i])
				}
			}
		}
	}
	if v.Len() != len(model) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(model))
	}
}
