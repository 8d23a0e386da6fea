// Package seq provides eager higher-order operations over slices: Each, Map,
// Filter, Reject, and the quantifiers Some, Every, None.
//
// Map and Filter are instantiations of the traversal engine in
// [github.com/on-the-ground/underscore_go/traverse] — Map pairs a
// preallocating shaper with lockstep assignment, Filter pairs a fresh-empty
// shaper with order-preserving append. The quantifiers are single-purpose
// short-circuit scans: the predicate is never evaluated past the deciding
// element.
//
// All operations run to completion on the caller's goroutine, make a single
// pass, and never retain the input past the call. Failures raised by a
// caller-supplied callable propagate immediately; a partially populated
// result is abandoned as-is.
//
// SomeSeq, EverySeq, NoneSeq, and EachSeq accept an [iter.Seq] instead of a
// slice for callers already holding an iterator.
package seq
