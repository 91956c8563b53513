// SPDX-License-Identifier: MIT
// Package: archgraph/core
//
// methods.go — append and read operations on the Graph.
//
// All mutation flows through AddLayer; every accessor returns defensive
// copies so callers can never perturb the stored graph.

package core

import (
	"fmt"

	"github.com/katalvlaran/archgraph/layer"
)

// AddLayer appends one operator application to the graph.
//
// Validation order (fail fast, no partial work):
//  1. l must be non-nil (ErrNilLayer).
//  2. predecessor count must match the variant's arity (ErrArity).
//  3. every predecessor id must already exist (ErrNodeNotFound).
//  4. the inferred output shape must be well-defined for the predecessor
//     shapes (ErrRankMismatch / ErrShapeMismatch / ErrShapeUnderflow).
//
// On success the new node's id is returned; ids are dense and increasing.
// Complexity: O(rank + len(inputs)).
func (g *Graph) AddLayer(l layer.Layer, inputs ...NodeID) (NodeID, error) {
	if l == nil {
		return 0, fmt.Errorf("AddLayer: %w", ErrNilLayer)
	}
	if err := checkArity(l, len(inputs)); err != nil {
		return 0, fmt.Errorf("AddLayer(%s): %w", l.Name(), err)
	}

	// Gather predecessor shapes; ids must reference existing nodes only.
	shapes := make([]Shape, len(inputs))
	for i, id := range inputs {
		if int(id) < 0 || int(id) >= len(g.nodes) {
			return 0, fmt.Errorf("AddLayer(%s): input[%d]=%d: %w", l.Name(), i, id, ErrNodeNotFound)
		}
		shapes[i] = g.nodes[id].Shape
	}

	out, err := inferShape(l, shapes)
	if err != nil {
		return 0, fmt.Errorf("AddLayer(%s): %w", l.Name(), err)
	}

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Shape: out})
	g.layers = append(g.layers, PlacedLayer{
		Layer:  l,
		Inputs: append([]NodeID(nil), inputs...),
		Output: id,
	})

	return id, nil
}

// ShapeOf returns a copy of the shape carried by node id.
// Returns ErrNodeNotFound for ids outside the graph.
// Complexity: O(rank).
func (g *Graph) ShapeOf(id NodeID) (Shape, error) {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("ShapeOf(%d): %w", id, ErrNodeNotFound)
	}

	return g.nodes[id].Shape.Clone(), nil
}

// Input returns a copy of the graph's input shape (node 0).
func (g *Graph) Input() Shape { return g.input.Clone() }

// OutputID returns the id of the most recently created node.
// For a fresh graph this is InputNodeID.
func (g *Graph) OutputID() NodeID { return NodeID(len(g.nodes) - 1) }

// NodeCount reports the number of nodes, including the input node.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LayerCount reports the number of placed layers (NodeCount() - 1).
func (g *Graph) LayerCount() int { return len(g.layers) }

// Nodes returns all nodes in creation order. Shapes are copied.
// Complexity: O(V·rank).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = Node{ID: n.ID, Shape: n.Shape.Clone()}
	}

	return out
}

// Layers returns all placed layers in append order, which is a valid
// topological order of the DAG. Input slices are copied.
// Complexity: O(L).
func (g *Graph) Layers() []PlacedLayer {
	out := make([]PlacedLayer, len(g.layers))
	for i, pl := range g.layers {
		out[i] = PlacedLayer{
			Layer:  pl.Layer,
			Inputs: append([]NodeID(nil), pl.Inputs...),
			Output: pl.Output,
		}
	}

	return out
}

// Inputs returns the predecessor ids that produced node id, or nil for the
// input node. Returns ErrNodeNotFound for ids outside the graph.
func (g *Graph) Inputs(id NodeID) ([]NodeID, error) {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("Inputs(%d): %w", id, ErrNodeNotFound)
	}
	if id == InputNodeID {
		return nil, nil
	}
	// layers[i] produced node i+1.
	return append([]NodeID(nil), g.layers[id-1].Inputs...), nil
}

// checkArity validates the predecessor count for the operator variant.
func checkArity(l layer.Layer, n int) error {
	switch l.(type) {
	case layer.Add:
		if n != 2 {
			return fmt.Errorf("add needs exactly 2 inputs, got %d: %w", n, ErrArity)
		}
	case layer.Concat:
		if n < 2 {
			return fmt.Errorf("concat needs at least 2 inputs, got %d: %w", n, ErrArity)
		}
	default:
		if n != 1 {
			return fmt.Errorf("%s needs exactly 1 input, got %d: %w", l.Name(), n, ErrArity)
		}
	}

	return nil
}
