// Package istr provides a lazily-evaluated interpolated string value for Go.
//
// An interpolated string is an alternating sequence of literal fragments and
// embedded values, the shape behind templates like "hello ${user}, you have
// ${count} messages". Expansion to text is deferred until rendering is
// explicitly requested, never performed at construction time.
//
// # Why lazy?
//
// Deferring rendering buys two things:
//   - Side effects stay where they belong. A value slot may hold a deferred
//     callable whose work (reading a counter, streaming a large report)
//     happens only when, and every time, the string is rendered.
//   - Structure survives until it is needed. Instances concatenate
//     structurally, so callers such as query builders can still walk the
//     fragments and values separately instead of receiving one flat string.
//
// # Shape
//
// Every instance satisfies len(fragments) == len(values) or
// len(fragments) == len(values)+1. Rendering interleaves fragments[0],
// values[0], fragments[1], values[1], ...; a trailing fragment has no
// following value. Instances are immutable after construction: every
// transformation allocates a new one.
//
// # Deferred callables
//
// A value slot holding a callable is invoked at render time, chosen by its
// parameter count: zero parameters means "compute and insert the result",
// one sink parameter means "write directly to the sink". A callable taking
// two or more parameters is a configuration error reported by rendering as
// ErrCallableArity. Callables run on every render; nothing is cached.
//
// # Identity is textual: read this before using Equal
//
// Equality, ordering, and hashing are defined on the *rendered text*, not on
// structure. Two instances with wildly different fragment/value shapes are
// equal whenever they happen to render identically, and because callables
// may produce different output on each call, an instance can even compare
// unequal to itself across two renders. This mirrors the behavior of the
// dynamic hosts this type models and is deliberate; treat it as a
// caller-visible hazard.
package istr
