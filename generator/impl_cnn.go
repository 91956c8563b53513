// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// impl_cnn.go — the plain convolutional stack template.
//
// Contract:
//   • Input rank ∈ [2,4] (1–3 spatial dims + channel), else ErrInvalidInputRank.
//   • depth iterations of ReLU → batchnorm(frontier channels) → conv(k3, s1,
//     →width); a max-pool follows every ⌊depth/4⌋ iterations except the last —
//     and follows every iteration when ⌊depth/4⌋ == 0.
//   • Tail: global-avg-pool → dropout(ConvDropoutRate) → dense(→width) →
//     ReLU → dense(width → numOutputs).
//
// The pooling cadence keeps spatial size from vanishing on shallow
// configurations while still down-sampling on deep ones.
//
// Complexity: O(depth) appended nodes; all bookkeeping O(1) per iteration.
// Determinism: purely a function of (numOutputs, input, depth, width).

package generator

import (
	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
)

// CNN is the plain convolutional stack template.
// Immutable after construction; safe for concurrent Generate calls.
type CNN struct {
	spatialBase
}

// NewCNN builds the template for numOutputs classes over the given input.
// Fails with ErrBadOutputCount or ErrInvalidInputRank (rank must be 2–4).
func NewCNN(numOutputs int, input core.Shape) (*CNN, error) {
	base, err := newSpatialBase(MethodCNN, numOutputs, input)
	if err != nil {
		return nil, err
	}

	return &CNN{spatialBase: base}, nil
}

// Generate builds a fresh plain-CNN graph. Honors WithDepth and WithWidth;
// rejects WithWidths with ErrOptionViolation.
func (s *CNN) Generate(opts ...Option) (*core.Graph, error) {
	cfg, err := newGenConfig(opts...)
	if err != nil {
		return nil, wrapOption(MethodCNN, err)
	}
	if err = rejectWidths(MethodCNN, cfg); err != nil {
		return nil, err
	}

	t := newTape(MethodCNN, s.input)
	out := core.InputNodeID
	inChannels := s.input.Channels()

	// Pool after every poolEvery-th iteration; 0 means after every one.
	poolEvery := cfg.depth / 4
	for i := 0; i < cfg.depth; i++ {
		out = t.append(layer.ReLU(), out)
		out = t.append(s.ops.BatchNorm(t.channels(out)), out)
		out = t.append(s.ops.Conv(inChannels, cfg.width, kernelStd), out)
		inChannels = cfg.width

		if poolEvery == 0 || ((i+1)%poolEvery == 0 && i != cfg.depth-1) {
			out = t.append(s.ops.MaxPool(), out)
		}
	}

	out = t.append(s.ops.GlobalAvgPool(), out)
	out = t.append(s.ops.Dropout(ConvDropoutRate), out)
	out = t.append(layer.NewDense(t.flatSize(out), cfg.width), out)
	out = t.append(layer.ReLU(), out)
	t.append(layer.NewDense(cfg.width, s.numOutputs), out)

	return t.finish()
}
