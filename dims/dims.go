// SPDX-License-Identifier: MIT
// Package: archgraph/dims
//
// dims.go — the rank → operator-family resolver and the Ops bundle.
//
// Contract:
//   • Resolve(rank) succeeds for rank ∈ [MinRank, MaxRank], else returns
//     ErrUnsupportedRank wrapped with the offending value.
//   • Ops methods construct layer descriptors pre-bound to the resolved
//     dimensionality; they never fail and never mutate Ops.
//
// Determinism:
//   • Pure lookup; equal ranks yield interchangeable bundles.
//
// Complexity:
//   • Resolve and every Ops method are O(1) (plus O(len(opts)) option application).

package dims

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/archgraph/layer"
)

const (
	// MinRank is the lowest spatial dimensionality with operator variants.
	MinRank = 1
	// MaxRank is the highest spatial dimensionality with operator variants.
	MaxRank = 3
)

// ErrUnsupportedRank indicates a spatial rank outside [MinRank, MaxRank].
// Usage: if errors.Is(err, ErrUnsupportedRank) { /* fix the input shape */ }.
var ErrUnsupportedRank = errors.New("dims: unsupported spatial rank")

// Ops is the immutable capability bundle for one spatial dimensionality.
// The zero value is not valid; obtain instances through Resolve.
type Ops struct {
	rank int
}

// Resolve maps a spatial rank to its operator-family bundle.
func Resolve(rank int) (Ops, error) {
	if rank < MinRank || rank > MaxRank {
		return Ops{}, fmt.Errorf("Resolve: rank=%d (must be in [%d,%d]): %w",
			rank, MinRank, MaxRank, ErrUnsupportedRank)
	}

	return Ops{rank: rank}, nil
}

// Rank reports the spatial dimensionality this bundle was resolved for.
func (o Ops) Rank() int { return o.rank }

// Conv builds a convolution descriptor bound to the resolved rank.
// Defaults and options follow layer.NewConv.
func (o Ops) Conv(in, out, kernel int, opts ...layer.ConvOption) layer.Conv {
	return layer.NewConv(o.rank, in, out, kernel, opts...)
}

// MaxPool builds a max-pooling descriptor bound to the resolved rank.
func (o Ops) MaxPool(opts ...layer.PoolOption) layer.Pool {
	return layer.NewPool(o.rank, layer.MaxPool, opts...)
}

// AvgPool builds an average-pooling descriptor bound to the resolved rank.
func (o Ops) AvgPool(opts ...layer.PoolOption) layer.Pool {
	return layer.NewPool(o.rank, layer.AvgPool, opts...)
}

// GlobalAvgPool builds a global-average-pooling descriptor bound to the
// resolved rank.
func (o Ops) GlobalAvgPool() layer.GlobalAvgPool {
	return layer.NewGlobalAvgPool(o.rank)
}

// BatchNorm builds a normalization descriptor over numFeatures channels.
func (o Ops) BatchNorm(numFeatures int) layer.BatchNorm {
	return layer.NewBatchNorm(o.rank, numFeatures)
}

// Dropout builds a spatial dropout descriptor with the given rate.
func (o Ops) Dropout(rate float64) layer.Dropout {
	return layer.NewDropout(o.rank, rate)
}
