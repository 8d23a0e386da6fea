// Package traverse provides the policy-based traversal engine behind the
// sequence operations in this module.
//
// Every eager traversal factors into exactly two decisions:
//
//   - a result-shaping policy: how to allocate the output container before
//     any element is visited, and
//   - an execution policy: how to populate that output element by element.
//
// The Engine only sequences the two — shape once, then populate once — and
// performs no iteration of its own. New traversal behaviors are added by
// picking or defining a new (shaper, executor) pair, never by writing another
// loop.
//
// # Capability Contracts
//
// Go doesn't support template specialization or overload resolution, but it
// does offer generic constraints checked at compile time. This package
// leverages them as named capability contracts (Iterable, Sized, EndAppender,
// Inserter, Emptiable): an operation's constraint set states exactly what a
// container must provide, and a container lacking a capability fails to
// compile at the instantiation site, naming the missing method.
//
// # Policies Are Stateless
//
// Shapers and executors are zero-sized tag types combined as type parameters
// of Engine. They hold no state of their own; all state lives in the sequences
// and callables passed through them. Failures raised by a caller-supplied
// callable propagate immediately; output already populated is left as-is.
//
// This package exports:
//   - Capability contracts for traversal inputs and outputs
//   - Result-shaping policies (PreallocSized, PreallocSeq, FreshEmpty,
//     FreshEmptySeq)
//   - Execution policies (TransformAssign, TransformAssignSeq, FilterAppend,
//     FilterPush, FilterInsert) and the Traced decorator
//   - Engine, plus container-generic derived operations built on it
package traverse
