// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// impl_mlp.go — the multilayer-perceptron stack template.
//
// Contract:
//   • Input rank must be exactly 1 (a flat feature vector), else
//     ErrInvalidInputRank at construction.
//   • width may be a single integer (broadcast over depth) or an explicit
//     per-layer sequence via WithWidths; a sequence length differing from the
//     depth fails with ErrWidthLengthMismatch.
//   • Per width in order: dense(prev → w) → dropout(MLPDropoutRate, flat) →
//     ReLU, threading prev forward; tail dense(last → numOutputs).
//
// Complexity: O(depth) appended nodes.
// Determinism: purely a function of (numOutputs, input, depth, widths).

package generator

import (
	"fmt"

	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
)

// flatDropoutDims is the rank-1 dropout variant placed between dense layers.
const flatDropoutDims = 1

// MLP is the multilayer-perceptron template.
// Immutable after construction; safe for concurrent Generate calls.
type MLP struct {
	numOutputs int
	input      core.Shape
}

// NewMLP builds the template for numOutputs classes over a flat input.
// Fails with ErrBadOutputCount, core.ErrBadShape, or ErrInvalidInputRank
// (rank must be exactly 1).
func NewMLP(numOutputs int, input core.Shape) (*MLP, error) {
	if numOutputs < MinOutputCount {
		return nil, fmt.Errorf("%s: numOutputs=%d (must be ≥ %d): %w",
			MethodMLP, numOutputs, MinOutputCount, ErrBadOutputCount)
	}
	if input.Rank() != FlatInputRank {
		return nil, fmt.Errorf("%s: input %s has rank %d (must be exactly %d): %w",
			MethodMLP, input, input.Rank(), FlatInputRank, ErrInvalidInputRank)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMLP, err)
	}

	return &MLP{numOutputs: numOutputs, input: input.Clone()}, nil
}

// Generate builds a fresh MLP graph. Honors WithDepth, WithWidth and
// WithWidths; an explicit widths sequence must have exactly depth entries.
func (s *MLP) Generate(opts ...Option) (*core.Graph, error) {
	cfg, err := newGenConfig(opts...)
	if err != nil {
		return nil, wrapOption(MethodMLP, err)
	}

	widths := cfg.widths
	if widths == nil {
		// Broadcast the scalar width over every hidden layer.
		widths = make([]int, cfg.depth)
		for i := range widths {
			widths[i] = cfg.width
		}
	} else if len(widths) != cfg.depth {
		return nil, fmt.Errorf("%s: len(widths)=%d, depth=%d: %w",
			MethodMLP, len(widths), cfg.depth, ErrWidthLengthMismatch)
	}

	t := newTape(MethodMLP, s.input)
	out := core.InputNodeID
	prev := s.input[0]
	for _, w := range widths {
		out = t.append(layer.NewDense(prev, w), out)
		out = t.append(layer.NewDropout(flatDropoutDims, MLPDropoutRate), out)
		out = t.append(layer.ReLU(), out)
		prev = w
	}
	t.append(layer.NewDense(prev, s.numOutputs), out)

	return t.finish()
}
