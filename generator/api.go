// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// api.go — the shared template contract and construction-time validation.
//
// Design contract (strict):
//   - One constructor per template: NewCNN / NewMLP / NewResNet / NewDenseNet /
//     NewMobileNetV2(numOutputs, input). Construction validates the output
//     count and the template's input-rank bounds, resolves the dims.Ops bundle
//     once, and stores only immutable state.
//   - Generate(opts...) is a pure function: it builds a fresh core.Graph on
//     every call, threads all running state (frontier ids, channel counters,
//     in-planes) through locals, and never mutates the generator.
//   - Determinism: equal generator configuration and equal options ⇒
//     identical graphs (same nodes, shapes, descriptors, order).
//   - Safety: never panic; return sentinel errors wrapped with the template's
//     method token.

package generator

import (
	"fmt"

	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/dims"
	"github.com/katalvlaran/archgraph/layer"
)

// Generator is the contract every architecture template satisfies.
type Generator interface {
	// Generate builds a fresh architecture graph for the resolved options.
	Generate(opts ...Option) (*core.Graph, error)
}

// spatialBase is the shared immutable state of the CNN-family templates:
// output count, a private copy of the input shape, and the operator bundle
// resolved for the input's spatial rank.
type spatialBase struct {
	numOutputs int
	input      core.Shape
	ops        dims.Ops
}

// newSpatialBase validates (numOutputs, input) against the CNN-family rank
// bounds and resolves the operator bundle.
//
// Errors:
//   - ErrBadOutputCount for numOutputs < MinOutputCount.
//   - ErrInvalidInputRank for rank outside [MinSpatialInputRank, MaxSpatialInputRank].
//   - core.ErrBadShape for non-positive dims.
//
// The rank bounds pre-filter dims.Resolve, so ErrUnsupportedRank is
// unreachable here; it is still propagated if the bounds ever drift apart.
func newSpatialBase(method string, numOutputs int, input core.Shape) (spatialBase, error) {
	if numOutputs < MinOutputCount {
		return spatialBase{}, fmt.Errorf("%s: numOutputs=%d (must be ≥ %d): %w",
			method, numOutputs, MinOutputCount, ErrBadOutputCount)
	}
	// Rank bounds first: a rank-0 shape is an input-rank violation, not a
	// malformed-dim one.
	if input.Rank() < MinSpatialInputRank || input.Rank() > MaxSpatialInputRank {
		return spatialBase{}, fmt.Errorf("%s: input %s has rank %d (must be in [%d,%d]): %w",
			method, input, input.Rank(), MinSpatialInputRank, MaxSpatialInputRank, ErrInvalidInputRank)
	}
	if err := input.Validate(); err != nil {
		return spatialBase{}, fmt.Errorf("%s: %w", method, err)
	}

	ops, err := dims.Resolve(input.Rank() - 1) // spatial rank = rank − channel dim
	if err != nil {
		return spatialBase{}, fmt.Errorf("%s: %w", method, err)
	}

	return spatialBase{numOutputs: numOutputs, input: input.Clone(), ops: ops}, nil
}

// tape threads a frontier through successive appends onto one graph,
// capturing the first error and turning every later operation into a no-op.
// It keeps template bodies linear — one line per operator, like the
// published block diagrams — while preserving the fail-fast contract.
type tape struct {
	g      *core.Graph
	method string
	err    error
}

// newTape opens a build over a fresh graph for the given input shape.
func newTape(method string, input core.Shape) *tape {
	g, err := core.NewGraph(input)
	if err != nil {
		err = fmt.Errorf("%s: %w", method, err)
	}

	return &tape{g: g, method: method, err: err}
}

// append places l over the given predecessors and returns the new frontier.
// After a failure it returns the zero NodeID and leaves the error sticky.
func (t *tape) append(l layer.Layer, inputs ...core.NodeID) core.NodeID {
	if t.err != nil {
		return 0
	}
	id, err := t.g.AddLayer(l, inputs...)
	if err != nil {
		t.err = fmt.Errorf("%s: %w", t.method, err)

		return 0
	}

	return id
}

// channels reads the channel count of node id, 0 once the tape has failed.
// Templates call it only on nodes they just created.
func (t *tape) channels(id core.NodeID) int {
	if t.err != nil {
		return 0
	}
	shape, err := t.g.ShapeOf(id)
	if err != nil {
		t.err = fmt.Errorf("%s: %w", t.method, err)

		return 0
	}

	return shape.Channels()
}

// flatSize reads the single dim of a rank-1 node, 0 once the tape has failed.
func (t *tape) flatSize(id core.NodeID) int {
	return t.channels(id) // rank-1 shapes carry their size in the last dim
}

// finish returns the built graph, or the first recorded error.
func (t *tape) finish() (*core.Graph, error) {
	if t.err != nil {
		return nil, t.err
	}

	return t.g, nil
}
