//go:build smallbranch

package rrbtree

// See params.go: this build selects a small branch factor so tests can
// observe multi-level tree shapes without large inputs.
const (
	BranchFactor = 4
	BitsPerLevel = 2
)
