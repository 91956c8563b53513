// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// impl_resnet.go — the residual-block stack template.
//
// Contract:
//   • Input rank ∈ [2,4], else ErrInvalidInputRank.
//   • Stem: conv(k3, →width) → batchnorm(width).
//   • Four stages of two basic blocks; the stage's first block carries the
//     stage stride (1 for stage 1, 2 for stages 2–4) and the width doubles
//     entering stages 2–4.
//   • Basic block: batchnorm(inPlanes) → ReLU → branch point; main branch
//     conv(k3, stride, →planes) → batchnorm → ReLU → conv(k3, s1); shortcut
//     branch ReLU(branch point) → conv(k1, stride, →planes·expansion); the
//     branches join in an elementwise add. The 1×1 projection exists solely
//     to match channel count and spatial stride — with conv padding k/2 the
//     two branches land on identical shapes for every stride.
//   • Tail: global-avg-pool → dense(final width·expansion → numOutputs).
//   • The running in-planes counter starts at resNetInitialPlanes (64) and is
//     threaded through the stage builders as a local; it is never reset
//     between stages and never stored on the generator.
//   • WithDepth is accepted but unused (the published layout fixes 2-2-2-2);
//     WithWidths is rejected with ErrOptionViolation.
//
// Complexity: O(stages·blocks) appended nodes.
// Determinism: purely a function of (numOutputs, input, width).

package generator

import (
	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
)

// ResNet is the residual-block stack template.
// Immutable after construction; safe for concurrent Generate calls.
type ResNet struct {
	spatialBase
}

// NewResNet builds the template for numOutputs classes over the given input.
// Fails with ErrBadOutputCount or ErrInvalidInputRank (rank must be 2–4).
func NewResNet(numOutputs int, input core.Shape) (*ResNet, error) {
	base, err := newSpatialBase(MethodResNet, numOutputs, input)
	if err != nil {
		return nil, err
	}

	return &ResNet{spatialBase: base}, nil
}

// Generate builds a fresh ResNet graph. Honors WithWidth; WithDepth is a
// documented no-op; WithWidths is rejected.
func (s *ResNet) Generate(opts ...Option) (*core.Graph, error) {
	cfg, err := newGenConfig(opts...)
	if err != nil {
		return nil, wrapOption(MethodResNet, err)
	}
	if err = rejectWidths(MethodResNet, cfg); err != nil {
		return nil, err
	}

	t := newTape(MethodResNet, s.input)
	out := t.append(s.ops.Conv(s.input.Channels(), cfg.width, kernelStd), core.InputNodeID)
	out = t.append(s.ops.BatchNorm(cfg.width), out)

	// Running counters, local to this call (re-entrancy by construction).
	inPlanes := resNetInitialPlanes
	planes := cfg.width
	for stage := 0; stage < resNetStages; stage++ {
		stride := resNetStageStride
		if stage == 0 {
			stride = 1
		} else {
			planes *= 2
		}
		out, inPlanes = s.stage(t, planes, resNetBlocksPerStage, out, stride, inPlanes)
	}

	out = t.append(s.ops.GlobalAvgPool(), out)
	t.append(layer.NewDense(planes*resNetBlockExpansion, s.numOutputs), out)

	return t.finish()
}

// stage appends blocks basic blocks for the given plane count; only the
// first block carries the stage stride. Returns the new frontier and the
// advanced in-planes counter.
func (s *ResNet) stage(t *tape, planes, blocks int, node core.NodeID, stride, inPlanes int) (core.NodeID, int) {
	out := node
	for b := 0; b < blocks; b++ {
		blockStride := stride
		if b > 0 {
			blockStride = 1
		}
		out = s.block(t, inPlanes, planes, out, blockStride)
		inPlanes = planes * resNetBlockExpansion
	}

	return out, inPlanes
}

// block appends one pre-activation basic block with a projection shortcut.
func (s *ResNet) block(t *tape, inPlanes, planes int, node core.NodeID, stride int) core.NodeID {
	out := t.append(s.ops.BatchNorm(inPlanes), node)
	out = t.append(layer.ReLU(), out)
	branch := out

	// Main branch: two k3 convolutions, stride only on the first.
	out = t.append(s.ops.Conv(inPlanes, planes, kernelStd, layer.WithStride(stride)), out)
	out = t.append(s.ops.BatchNorm(planes), out)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.Conv(planes, planes, kernelStd), out)

	// Shortcut branch: ReLU on the pre-branch frontier, then the projection.
	short := t.append(layer.ReLU(), branch)
	short = t.append(s.ops.Conv(inPlanes, planes*resNetBlockExpansion, kernelPoint,
		layer.WithStride(stride)), short)

	return t.append(layer.NewAdd(), out, short)
}
