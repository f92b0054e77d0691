package pvec

import (
	"testing"

	"github.com/go-pvec/pvec/rrbtree"
)

func TestRbVecPushGetRoundTrips(t *testing.T) {
	const n = rrbtree.BranchFactor*2 + 9
	v := NewRb[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	for i := 0; i < n; i++ {
		got, ok := v.Get(i)
		if !ok || got != i {
			t.Fatalf("Get(%d) = %d,%v want %d,true", i, got, ok, i)
		}
	}
}

func TestRbVecAppendAndSplitOffRoundTrip(t *testing.T) {
	const n = rrbtree.BranchFactor*3 + 4
	v := NewRb[int]()
	for i := 0; i < n; i++ {
		v.Push(i)
	}
	right := v.SplitOff(n / 2)
	if v.Len()+right.Len() != n {
		t.Fatalf("split halves sum to %d, want %d", v.Len()+right.Len(), n)
	}
	rejoined := v.Append(right)
	if rejoined.Len() != n {
		t.Fatalf("rejoined.Len() = %d, want %d", rejoined.Len(), n)
	}
	for i := 0; i < n; i++ {
		got, _ := rejoined.Get(i)
		if got != i {
			t.Fatalf("rejoined[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestRbVecCloneIsolatesMutation(t *testing.T) {
	v := NewRb[int]()
	v.Push(1)
	v.Push(2)
	snapshot := v.Clone()
	v.SetAt(0, 99)

	if got := snapshot.At(0); got != 1 {
		t.Fatalf("snapshot.At(0) = %d, want 1", got)
	}
}
