// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// impl_densenet.go — the dense-block stack template with transitions.
//
// Contract:
//   • Input rank ∈ [2,4], else ErrInvalidInputRank.
//   • Head: conv(k7, →width) → batchnorm(denseNetInitFeatures) → ReLU →
//     max-pool(k3, s2, p1). The head normalization is sized to the configured
//     initial-feature constant, NOT to the head convolution's width parameter;
//     the two agree only at the default width. Preserved published behavior —
//     see the package tests that pin it.
//   • Four dense blocks of (6,12,24,16) dense layers. One dense layer:
//     batchnorm(in) → ReLU → conv(k1, →bnSize·growth) → batchnorm → ReLU →
//     conv(k3, →growth, p1) → dropout(denseNetDropRate), concatenated with its
//     own block-local input. Channels grow by the growth rate per layer:
//     the per-layer input feature count is numInputFeatures + i·growth.
//   • A transition follows every block but the last: batchnorm → ReLU →
//     conv(k1, →features/2) → avg-pool(k2, s2); features halve (floor).
//   • Tail: batchnorm(features) → ReLU → global-avg-pool →
//     dense(features → numOutputs).
//   • WithDepth is accepted but unused; WithWidth feeds only the head
//     convolution; WithWidths is rejected with ErrOptionViolation.
//
// Complexity: O(Σ block layer counts) appended nodes.
// Determinism: purely a function of (numOutputs, input, width).

package generator

import (
	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
)

// DenseNet is the dense-block stack template.
// Immutable after construction; safe for concurrent Generate calls.
type DenseNet struct {
	spatialBase
}

// NewDenseNet builds the template for numOutputs classes over the given
// input. Fails with ErrBadOutputCount or ErrInvalidInputRank (rank 2–4).
func NewDenseNet(numOutputs int, input core.Shape) (*DenseNet, error) {
	base, err := newSpatialBase(MethodDenseNet, numOutputs, input)
	if err != nil {
		return nil, err
	}

	return &DenseNet{spatialBase: base}, nil
}

// Generate builds a fresh DenseNet graph. Honors WithWidth (head convolution
// only); WithDepth is a documented no-op; WithWidths is rejected.
func (s *DenseNet) Generate(opts ...Option) (*core.Graph, error) {
	cfg, err := newGenConfig(opts...)
	if err != nil {
		return nil, wrapOption(MethodDenseNet, err)
	}
	if err = rejectWidths(MethodDenseNet, cfg); err != nil {
		return nil, err
	}

	t := newTape(MethodDenseNet, s.input)

	// Head. The batchnorm is sized to the constant, not cfg.width (see above).
	out := t.append(s.ops.Conv(s.input.Channels(), cfg.width, kernelWide), core.InputNodeID)
	out = t.append(s.ops.BatchNorm(denseNetInitFeatures), out)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.MaxPool(
		layer.WithPoolKernel(kernelStd),
		layer.WithPoolStride(2),
		layer.WithPoolPadding(1)), out)

	// Dense blocks with transitions; the feature counter is call-local.
	features := denseNetInitFeatures
	for i, numLayers := range denseNetBlockConfig {
		out = s.denseBlock(t, numLayers, features, out)
		features += numLayers * denseNetGrowthRate
		if i != len(denseNetBlockConfig)-1 {
			out = s.transition(t, features, features/2, out)
			features /= 2
		}
	}

	// Tail.
	out = t.append(s.ops.BatchNorm(features), out)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.GlobalAvgPool(), out)
	t.append(layer.NewDense(features, s.numOutputs), out)

	return t.finish()
}

// denseBlock appends numLayers dense layers; each layer's declared input
// features advance by the growth rate, mirroring the concatenation growth.
func (s *DenseNet) denseBlock(t *tape, numLayers, numInputFeatures int, node core.NodeID) core.NodeID {
	out := node
	for i := 0; i < numLayers; i++ {
		out = s.denseLayer(t, numInputFeatures+i*denseNetGrowthRate, out)
	}

	return out
}

// denseLayer appends one bottlenecked dense layer and concatenates its
// output with the layer's own input (block-local, not the network input).
func (s *DenseNet) denseLayer(t *tape, numInputFeatures int, node core.NodeID) core.NodeID {
	bottleneck := denseNetBNSize * denseNetGrowthRate

	out := t.append(s.ops.BatchNorm(numInputFeatures), node)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.Conv(numInputFeatures, bottleneck, kernelPoint), out)
	out = t.append(s.ops.BatchNorm(bottleneck), out)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.Conv(bottleneck, denseNetGrowthRate, kernelStd), out)
	out = t.append(s.ops.Dropout(denseNetDropRate), out)

	return t.append(layer.NewConcat(), node, out)
}

// transition appends the between-block down-sampler halving the channels.
func (s *DenseNet) transition(t *tape, numInputFeatures, numOutputFeatures int, node core.NodeID) core.NodeID {
	out := t.append(s.ops.BatchNorm(numInputFeatures), node)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.Conv(numInputFeatures, numOutputFeatures, kernelPoint), out)

	return t.append(s.ops.AvgPool(), out) // k2 s2: spatial halves
}
