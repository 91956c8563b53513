// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// impl_mobilenetv2.go — the inverted-residual mobile stack template.
//
// Contract:
//   • Input rank ∈ [2,4], else ErrInvalidInputRank.
//   • Head: conv(k3, s1, p1, →32) → batchnorm → ReLU.
//   • Stage table (reduced two-stage set, fixed for this core): each row
//     (expansion, outPlanes, repeats, stride) expands to repeats blocks where
//     only the first carries the row's stride.
//   • Inverted residual block with planes = expansion·inPlanes:
//     expand  conv(k1, →planes) → batchnorm → ReLU;
//     depthwise conv(k3, stride, p1, groups=planes) → batchnorm → ReLU;
//     project conv(k1, →outPlanes) → batchnorm (no trailing activation).
//     Only when stride == 1 AND inPlanes ≠ outPlanes is a projection shortcut
//     (conv k1 → batchnorm) taken from the block's original input and summed
//     with the main branch; otherwise the block output is the main branch
//     alone. The asymmetry is the published semantics — do not "fix" it.
//   • Tail: conv(k1, →4·outPlanes) → batchnorm → ReLU → global-avg-pool →
//     dense(4·outPlanes → numOutputs).
//   • The running in-planes counter starts at 32 and is threaded through the
//     stage loop as a local. Batchnorm widths are read back from the graph
//     (ShapeOf on the node just created), as the published generator does.
//   • WithDepth and WithWidth are accepted but unused (the stage table fixes
//     the topology); WithWidths is rejected with ErrOptionViolation.
//
// Complexity: O(Σ stage repeats) appended nodes.
// Determinism: purely a function of (numOutputs, input).

package generator

import (
	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
)

// MobileNetV2 is the inverted-residual mobile stack template.
// Immutable after construction; safe for concurrent Generate calls.
type MobileNetV2 struct {
	spatialBase
}

// NewMobileNetV2 builds the template for numOutputs classes over the given
// input. Fails with ErrBadOutputCount or ErrInvalidInputRank (rank 2–4).
func NewMobileNetV2(numOutputs int, input core.Shape) (*MobileNetV2, error) {
	base, err := newSpatialBase(MethodMobileNetV2, numOutputs, input)
	if err != nil {
		return nil, err
	}

	return &MobileNetV2{spatialBase: base}, nil
}

// Generate builds a fresh MobileNetV2 graph. Depth and width knobs are
// documented no-ops; WithWidths is rejected.
func (s *MobileNetV2) Generate(opts ...Option) (*core.Graph, error) {
	cfg, err := newGenConfig(opts...)
	if err != nil {
		return nil, wrapOption(MethodMobileNetV2, err)
	}
	if err = rejectWidths(MethodMobileNetV2, cfg); err != nil {
		return nil, err
	}

	t := newTape(MethodMobileNetV2, s.input)

	// Head.
	out := t.append(s.ops.Conv(s.input.Channels(), mobileNetInitPlanes, kernelStd), core.InputNodeID)
	out = t.append(s.ops.BatchNorm(t.channels(out)), out)
	out = t.append(layer.ReLU(), out)

	// Stage table; the in-planes counter is call-local.
	inPlanes := mobileNetInitPlanes
	for _, st := range mobileNetStages {
		for b := 0; b < st.repeats; b++ {
			stride := st.stride
			if b > 0 {
				stride = 1
			}
			out = s.block(t, inPlanes, st.outPlanes, st.expansion, out, stride)
			inPlanes = st.outPlanes
		}
	}

	// Tail: widen, pool, classify.
	head := inPlanes * mobileNetHeadExpansion
	out = t.append(s.ops.Conv(inPlanes, head, kernelPoint), out)
	out = t.append(s.ops.BatchNorm(t.channels(out)), out)
	out = t.append(layer.ReLU(), out)
	out = t.append(s.ops.GlobalAvgPool(), out)
	t.append(layer.NewDense(head, s.numOutputs), out)

	return t.finish()
}

// block appends one inverted residual block.
func (s *MobileNetV2) block(t *tape, inPlanes, outPlanes, expansion int, node core.NodeID, stride int) core.NodeID {
	planes := expansion * inPlanes

	// Expand.
	out := t.append(s.ops.Conv(inPlanes, planes, kernelPoint), node)
	out = t.append(s.ops.BatchNorm(t.channels(out)), out)
	out = t.append(layer.ReLU(), out)

	// Depthwise.
	out = t.append(s.ops.Conv(planes, planes, kernelStd,
		layer.WithStride(stride), layer.WithGroups(planes)), out)
	out = t.append(s.ops.BatchNorm(t.channels(out)), out)
	out = t.append(layer.ReLU(), out)

	// Project (linear: no trailing activation).
	out = t.append(s.ops.Conv(planes, outPlanes, kernelPoint), out)
	out = t.append(s.ops.BatchNorm(t.channels(out)), out)

	// Shortcut only when the block neither strides nor preserves channels.
	if stride == 1 && inPlanes != outPlanes {
		short := t.append(s.ops.Conv(inPlanes, outPlanes, kernelPoint), node)
		short = t.append(s.ops.BatchNorm(t.channels(short)), short)
		out = t.append(layer.NewAdd(), out, short)
	}

	return out
}
