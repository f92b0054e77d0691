/*
Package sharedptr provides a reference-counted handle with copy-on-write
semantics, the sole primitive through which the rrbtree package mutates
shared tree nodes.

A Ptr[T] behaves like Rust's Rc<T>/Arc<T>: Clone bumps a refcount instead of
copying T, MakeMut clones T (and re-homes the handle) only when the refcount
shows more than one owner, and Take consumes the handle, moving T out when
possible and cloning it otherwise.

Refcounting here is manual, not garbage-collector-derived: Go has no
destructors, so a Ptr's count only reflects Clone/Release calls a caller
actually makes. Code that takes a Clone() of a handle and later no longer
needs that specific copy must call Release() to keep the count accurate; an
over-counted Ptr is still correct; it simply forces an extra clone on the
next MakeMut.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sharedptr
