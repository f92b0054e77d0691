//go:build !smallbranch

package rrbtree

// BranchFactor is the maximum number of children of a Branch/RelaxedBranch
// node, and the maximum number of elements of a Leaf. BitsPerLevel is
// log2(BranchFactor); it must always satisfy 1<<BitsPerLevel == BranchFactor.
//
// These are compile-time constants, not runtime configuration: build with
// the smallbranch tag (params_smallbranch.go) to get a small, shallow tree
// useful for exercising multi-level behavior in tests without huge inputs.
const (
	BranchFactor = 32
	BitsPerLevel = 5
)
