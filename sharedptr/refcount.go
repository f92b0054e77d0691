//go:build !pvec_unsync

package sharedptr

import "sync/atomic"

// refcount is the default, concurrency-safe counter, matching Rust's Arc
// mode: a Ptr built with this counter may be shared read-only across
// goroutines. Build with the pvec_unsync tag to switch every Ptr in the
// module to the non-atomic Rc-mode counter in refcount_unsync.go instead.
type refcount struct {
	n atomic.Int32
}

func newRefcount(initial int32) refcount {
	var r refcount
	r.n.Store(initial)
	return r
}

func (r *refcount) add(delta int32) int32 {
	return r.n.Add(delta)
}

func (r *refcount) load() int32 {
	return r.n.Load()
}
