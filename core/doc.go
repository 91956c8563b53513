// Package core defines the architecture graph: an append-only DAG whose nodes
// carry tensor shapes and whose edges record which operator produced each node
// from its predecessors.
//
// Model:
//
//   - A Graph is created from one input Shape; the input is node 0.
//   - AddLayer(op, preds...) validates the predecessors, infers the new node's
//     shape from the operator descriptor and the predecessor shapes, and
//     returns the new node's id. Node ids are dense and monotonically
//     increasing, so every append only ever references already-existing ids
//     and the graph is acyclic by construction.
//   - Nodes are never mutated after creation; the append order of placed
//     layers is a topological order a downstream compiler can consume as-is.
//
// Shape inference is an exhaustive switch over the sealed layer variant set:
// identity for activation/normalization/dropout, windowed arithmetic for
// convolution and pooling, spatial collapse for global pooling, and
// structural checks for elementwise-add (identical shapes) and concatenation
// (all-but-channel agreement). Declared channel parameters (a convolution's
// In, a normalization's NumFeatures) are intentionally NOT cross-checked
// against predecessor channels — keeping them consistent is the template's
// precondition, and one published template knowingly violates it at
// non-default widths.
//
// Errors: all failures are package-level sentinels (ErrBadShape,
// ErrNodeNotFound, ErrArity, ErrRankMismatch, ErrShapeMismatch,
// ErrShapeUnderflow, ErrUnknownLayer, ErrNilLayer); branch with errors.Is.
//
// Concurrency: a Graph is confined to one goroutine while being built; once
// construction finishes it is effectively immutable and safe for concurrent
// reads. No internal locking is performed — generation is a pure, bounded,
// single-threaded computation.
package core
