// Package combinator provides small reusable building blocks for callables:
// positional-argument selectors, constant and no-op callables, one-shot
// memoizing wrappers, bounded multi-argument memoization, and ordered-fallback
// composition.
//
// Combinators are not just utilities to shorten call sites.
// A combinator *forces the developer to ask*:
//
//	→ "What does this callable actually depend on?"
//	→ "Can this behavior be named once and recombined, instead of rewritten?"
//
// That question is not about brevity—it's about keeping behavior orthogonal.
// Every traversal operation in this module is assembled from combinators and
// policies rather than from bespoke loops.
//
// Features:
//   - IdentityAt0Of1 to IdentityAt3Of4 / CopyAt0Of1 to CopyAt3Of4: typed,
//     generic positional selectors for common arities.
//   - Always, AlwaysTrue, AlwaysFalse, Noop: total, side-effect-free callables.
//   - Once, OnceVoid, OnceErr: at-most-once invocation with a defined retry
//     policy on failure.
//   - Memoize1 to Memoize4: trie-backed bounded caches for pure functions.
//   - Concat with Dispatch1/Dispatch2: ordered fallback over callables of
//     differing argument types.
//
// WARNING: Once wrappers and Memoize tables are single-goroutine by design.
// Sharing one wrapper across goroutines requires external synchronization.
package combinator
