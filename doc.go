/*
Package pvec provides persistent, structurally-shared vectors backed by a
Relaxed Radix-Balanced tree (see the rrbtree subpackage): RbVec, a strictly
balanced vector; RrbVec, the same shape but willing to go relaxed so Append
and SplitOff splice subtrees instead of copying elements; and PVec, a wrapper that defers the
tree entirely for small vectors and migrates to an RrbVec once it outgrows
a single tail buffer.

All three share the same tail-buffer discipline: elements are appended into
a small in-place buffer and only pushed into the tree, a full leaf at a
time, once the buffer fills, so the common case of repeated Push never
touches the tree at all.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pvec

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("pvec")
}
