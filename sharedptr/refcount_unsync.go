//go:build pvec_unsync

package sharedptr

// refcount is the single-threaded counter selected by the pvec_unsync build
// tag, matching Rust's Rc mode: cheaper than the atomic default, but a Ptr
// built with this counter must not be shared across goroutines.
type refcount struct {
	n int32
}

func newRefcount(initial int32) refcount {
	return refcount{n: initial}
}

func (r *refcount) add(delta int32) int32 {
	r.n += delta
	return r.n
}

func (r *refcount) load() int32 {
	return r.n
}
