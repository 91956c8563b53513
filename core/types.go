// SPDX-License-Identifier: MIT
// Package: archgraph/core
//
// types.go — Shape, Node, PlacedLayer, Graph, sentinel errors, NewGraph.
//
// Invariants (enforced across this package):
//   • Shapes attached to nodes are positive-dim tuples, channel-last.
//   • Node ids are dense: nodes[i].ID == NodeID(i); node 0 is the input.
//   • PlacedLayer records are stored in append order (already topological).

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/archgraph/layer"
)

// Sentinel errors for architecture-graph operations.
var (
	// ErrBadShape indicates a shape with no dims or a non-positive dim.
	ErrBadShape = errors.New("core: invalid shape")

	// ErrNodeNotFound indicates a predecessor id that does not exist yet.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNilLayer indicates AddLayer received a nil operator descriptor.
	ErrNilLayer = errors.New("core: nil layer")

	// ErrArity indicates a predecessor count invalid for the operator
	// (add needs exactly 2, concat at least 2, everything else exactly 1).
	ErrArity = errors.New("core: wrong predecessor count")

	// ErrBadParam indicates a window operator with an out-of-range parameter
	// (kernel < 1, stride < 1, or padding < 0).
	ErrBadParam = errors.New("core: invalid operator parameter")

	// ErrRankMismatch indicates an input rank the operator cannot consume
	// (e.g. a 2-D convolution applied to a rank-2 tensor).
	ErrRankMismatch = errors.New("core: input rank mismatch")

	// ErrShapeMismatch indicates structurally incompatible predecessor shapes
	// for a multi-input operator (add/concat).
	ErrShapeMismatch = errors.New("core: shape mismatch")

	// ErrShapeUnderflow indicates a window operator that would produce a
	// non-positive spatial dim (kernel larger than the padded input).
	ErrShapeUnderflow = errors.New("core: spatial dim underflow")

	// ErrUnknownLayer indicates an operator outside the sealed variant set.
	ErrUnknownLayer = errors.New("core: unknown layer variant")
)

// Shape is an ordered tuple of positive tensor dims, channel-last.
// For spatial tensors: (spatial dims..., channels); for flat vectors: (features,).
type Shape []int

// Rank reports the number of dims.
func (s Shape) Rank() int { return len(s) }

// Channels reports the last (channel) dim, or 0 for an empty shape.
func (s Shape) Channels() int {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1]
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether s and t have identical rank and dims.
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i, d := range s {
		if d != t[i] {
			return false
		}
	}

	return true
}

// Validate returns ErrBadShape unless every dim is positive and rank ≥ 1.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty shape: %w", ErrBadShape)
	}
	for i, d := range s {
		if d < 1 {
			return fmt.Errorf("dim[%d]=%d (must be ≥ 1): %w", i, d, ErrBadShape)
		}
	}

	return nil
}

// String renders s as "(d0,d1,...)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(')')

	return b.String()
}

// NodeID identifies a node within one Graph. Ids are dense, starting at 0.
type NodeID int

// InputNodeID is the id of the node carrying the graph's input shape.
const InputNodeID NodeID = 0

// Node is one shape-carrying vertex of the architecture graph.
// Nodes are immutable after creation.
type Node struct {
	// ID is the node's position in creation order.
	ID NodeID

	// Shape is the tensor shape this node carries.
	Shape Shape
}

// PlacedLayer records one AddLayer application: the operator descriptor, the
// predecessor node ids it consumed, and the node id it produced.
type PlacedLayer struct {
	// Layer is the operator descriptor.
	Layer layer.Layer

	// Inputs are the predecessor node ids, in the order given to AddLayer.
	Inputs []NodeID

	// Output is the node id created by this application.
	Output NodeID
}

// Graph is the append-only architecture DAG.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	input  Shape         // the validated input shape (node 0)
	nodes  []Node        // dense node store; nodes[i].ID == NodeID(i)
	layers []PlacedLayer // append-order layer records
}

// NewGraph creates a graph whose node 0 carries a copy of input.
// Returns ErrBadShape for an empty or non-positive shape.
// Complexity: O(rank).
func NewGraph(input Shape) (*Graph, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}
	in := input.Clone()

	return &Graph{
		input: in,
		nodes: []Node{{ID: InputNodeID, Shape: in}},
	}, nil
}
