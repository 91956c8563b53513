// Package archgraph synthesizes neural-network architecture graphs from a
// handful of hyperparameters — depth, width, input shape, output count —
// without touching a single weight or tensor value.
//
// 🚀 What is archgraph?
//
//	A deterministic, in-memory library that turns a template name plus a few
//	scalar knobs into a directed acyclic graph of abstract layer descriptors
//	and tensor-shape nodes, ready for a downstream compiler to realize:
//		• Plain CNN     — uniform conv stack with a pooling cadence
//		• MLP           — dense stack with per-layer width control
//		• ResNet        — four stages of basic blocks with projection shortcuts
//		• DenseNet      — dense blocks growing channels via concatenation
//		• MobileNetV2   — inverted residual blocks around depthwise convolutions
//
// ✨ Why choose archgraph?
//
//   - Deterministic – identical inputs always yield identical graphs
//   - Shape-safe – every appended operator is checked against its predecessors
//   - Pure Go – no cgo, no numerics, no hidden deps
//   - Re-entrant – generators hold only immutable state; generate concurrently
//
// Everything is organized under four subpackages:
//
//	core/      — the architecture graph: shape-carrying nodes + placed layers
//	layer/     — the closed set of operator descriptors (conv, pool, dense, …)
//	dims/      — rank → operator-family resolver (1-D/2-D/3-D capability bundle)
//	generator/ — the five architecture templates
//
// Quick ASCII example (one ResNet basic block):
//
//	norm──relu──conv──norm──relu──conv──┐
//	       │                            add──▶
//	       └──relu──conv(1×1)───────────┘
//
// Dive into the per-package docs for contracts, shape rules, and complexity
// notes on every operation.
//
//	go get github.com/katalvlaran/archgraph
package archgraph
