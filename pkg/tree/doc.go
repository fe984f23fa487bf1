// Package tree implements the core node model for rooted trees, binary
// trees, and directed acyclic graphs.
//
// Three node variants share a single structural abstraction, the [Node]
// interface:
//
//   - [TreeNode]: at most one parent, name-addressed, sibling names unique
//   - [DAGNode]: any number of parents, names need not be unique
//   - [BinaryNode]: a tree node capped at two children with left/right slots
//
// All variants carry an open [Attrs] key/value bag that is never
// structurally meaningful to the engine.
//
// # Invariants
//
// Every mutation goes through a shared validate-then-commit engine that
// enforces, before any state changes:
//
//   - acyclicity: a node can never become its own ancestor
//   - bidirectional consistency: parent and child references always agree
//   - sibling name uniqueness for tree and binary variants
//   - the two-child capacity of binary nodes
//
// A failed mutation leaves the structure exactly as it was. Batch mutations
// ([Node.SetChildren], [Node.Extend]) validate the whole batch up front, so
// a failing element never leaves earlier elements attached.
//
// Cycle, type, and name checks can be disabled per tree via [Config] for
// performance-critical construction; behavior on violation is then
// undefined. The binary capacity check is always enforced.
//
// # Paths
//
// Nodes are addressed by slash-delimited paths computed on demand from the
// parent chain (see [PathName], [Resolve]). The separator is a property of
// the root and is inherited by the whole tree.
//
// # Concurrency
//
// Nodes are not safe for concurrent mutation. Lazy sequences returned by
// the relationship accessors re-derive from current structure on every
// consumption; mutating mid-iteration is unsupported.
package tree
