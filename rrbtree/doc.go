/*
Package rrbtree implements the Relaxed Radix-Balanced tree that backs the
pvec package's vector types: the Leaf/Branch/RelaxedBranch node variants,
where a RelaxedBranch lets concatenation and split splice unevenly filled
subtrees instead of copying elements, and the RrbTree engine itself
(indexing, push, pop, append, split). Nodes are reference-counted through sharedptr.Ptr and mutated
copy-on-write; RrbTree values are themselves cheap to Clone and safe to
keep around after a mutating call returns a new one.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rrbtree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("rrbtree")
}
