// SPDX-License-Identifier: MIT
// Package: archgraph/core
//
// infer.go — shape inference over the sealed operator-variant set.
//
// Rules (channel-last throughout):
//   • activation / batchnorm / dropout: identity.
//   • conv:  rank must be Dims+1; kernel/stride ≥ 1 and padding ≥ 0, else
//            ErrBadParam; per spatial dim out = (d+2p−k)/s + 1 (floor);
//            channels become Out.
//   • pool:  same windowed rule with the pool's k/s/p; channels preserved.
//   • globalavgpool: rank must be Dims+1; result is (channels,).
//   • dense: rank must be 1; result is (Out,).
//   • add:   exactly two identical shapes; identity.
//   • concat: equal rank, equal non-channel dims; channel = Σ channels.
//
// Declared channel parameters (Conv.In, BatchNorm.NumFeatures, Dense.In,
// Pool/Dropout dims vs. actual channels) are NOT cross-checked here — that is
// a template precondition per the architecture-graph contract.

package core

import (
	"fmt"

	"github.com/katalvlaran/archgraph/layer"
)

// inferShape computes the output shape for one operator application.
// in is non-empty and arity-checked by the caller.
func inferShape(l layer.Layer, in []Shape) (Shape, error) {
	switch v := l.(type) {
	case layer.Activation:
		return in[0].Clone(), nil

	case layer.BatchNorm:
		if in[0].Rank() != v.Dims+1 {
			return nil, rankErr(in[0], v.Dims+1)
		}

		return in[0].Clone(), nil

	case layer.Dropout:
		// Identity on any rank: the published CNN template applies its
		// spatial dropout variant to the flattened post-pool vector, so the
		// variant number is advisory for the downstream compiler only.
		return in[0].Clone(), nil

	case layer.Conv:
		return windowShape(in[0], v.Dims, v.Kernel, v.Stride, v.Padding, v.Out)

	case layer.Pool:
		return windowShape(in[0], v.Dims, v.Kernel, v.Stride, v.Padding, in[0].Channels())

	case layer.GlobalAvgPool:
		if in[0].Rank() != v.Dims+1 {
			return nil, rankErr(in[0], v.Dims+1)
		}

		return Shape{in[0].Channels()}, nil

	case layer.Dense:
		if in[0].Rank() != 1 {
			return nil, rankErr(in[0], 1)
		}

		return Shape{v.Out}, nil

	case layer.Add:
		if !in[0].Equal(in[1]) {
			return nil, fmt.Errorf("add inputs %s vs %s: %w", in[0], in[1], ErrShapeMismatch)
		}

		return in[0].Clone(), nil

	case layer.Concat:
		return concatShape(in)

	default:
		return nil, fmt.Errorf("%T: %w", l, ErrUnknownLayer)
	}
}

// windowShape applies the shared conv/pool spatial arithmetic.
// outChannels is the resulting channel dim (conv: Out; pool: preserved).
func windowShape(in Shape, dims, kernel, stride, padding, outChannels int) (Shape, error) {
	if in.Rank() != dims+1 {
		return nil, rankErr(in, dims+1)
	}
	if kernel < 1 || stride < 1 || padding < 0 {
		return nil, fmt.Errorf("kernel=%d stride=%d padding=%d: %w",
			kernel, stride, padding, ErrBadParam)
	}
	out := make(Shape, in.Rank())
	for i := 0; i < dims; i++ {
		padded := in[i] + 2*padding - kernel
		if padded < 0 {
			return nil, fmt.Errorf("dim[%d]=%d with kernel=%d padding=%d: %w",
				i, in[i], kernel, padding, ErrShapeUnderflow)
		}
		// padded ≥ 0, so integer division is the mathematical floor.
		out[i] = padded/stride + 1
	}
	out[dims] = outChannels

	return out, nil
}

// concatShape joins ≥2 shapes along the channel dim.
func concatShape(in []Shape) (Shape, error) {
	base := in[0]
	channels := base.Channels()
	for _, s := range in[1:] {
		if s.Rank() != base.Rank() {
			return nil, fmt.Errorf("concat inputs %s vs %s: %w", base, s, ErrShapeMismatch)
		}
		for i := 0; i < base.Rank()-1; i++ {
			if s[i] != base[i] {
				return nil, fmt.Errorf("concat inputs %s vs %s differ at dim %d: %w",
					base, s, i, ErrShapeMismatch)
			}
		}
		channels += s.Channels()
	}
	out := base.Clone()
	out[out.Rank()-1] = channels

	return out, nil
}

// rankErr builds the shared rank-mismatch error.
func rankErr(in Shape, want int) error {
	return fmt.Errorf("input %s has rank %d, operator needs %d: %w",
		in, in.Rank(), want, ErrRankMismatch)
}
