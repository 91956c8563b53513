// SPDX-License-Identifier: MIT
// Package core_test verifies the per-variant shape-inference rules.
package core_test

import (
	"testing"

	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/layer"
	"github.com/stretchr/testify/require"
)

// inferOne appends l onto a fresh graph over input and returns the new shape.
func inferOne(t *testing.T, input core.Shape, l layer.Layer) (core.Shape, error) {
	t.Helper()
	g := mustGraph(t, input)
	id, err := g.AddLayer(l, core.InputNodeID)
	if err != nil {
		return nil, err
	}
	shape, err := g.ShapeOf(id)
	require.NoError(t, err)

	return shape, nil
}

func TestInfer_ConvArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		input core.Shape
		conv  layer.Conv
		want  core.Shape
	}{
		{
			name:  "k3 s1 p1 preserves spatial",
			input: core.Shape{32, 32, 3},
			conv:  layer.NewConv(2, 3, 64, 3),
			want:  core.Shape{32, 32, 64},
		},
		{
			name:  "k7 s1 p3 preserves spatial",
			input: core.Shape{32, 32, 3},
			conv:  layer.NewConv(2, 3, 64, 7),
			want:  core.Shape{32, 32, 64},
		},
		{
			name:  "k3 s2 p1 halves odd-aware",
			input: core.Shape{33, 32, 8},
			conv:  layer.NewConv(2, 8, 16, 3, layer.WithStride(2)),
			want:  core.Shape{17, 16, 16},
		},
		{
			name:  "k1 s2 p0 matches k3 s2 p1",
			input: core.Shape{33, 32, 8},
			conv:  layer.NewConv(2, 8, 16, 1, layer.WithStride(2)),
			want:  core.Shape{17, 16, 16},
		},
		{
			name:  "depthwise groups leave shape rule unchanged",
			input: core.Shape{16, 16, 32},
			conv:  layer.NewConv(2, 32, 32, 3, layer.WithGroups(32)),
			want:  core.Shape{16, 16, 32},
		},
		{
			name:  "1d variant",
			input: core.Shape{10, 4},
			conv:  layer.NewConv(1, 4, 8, 3, layer.WithStride(2)),
			want:  core.Shape{5, 8},
		},
		{
			name:  "3d variant",
			input: core.Shape{8, 8, 8, 2},
			conv:  layer.NewConv(3, 2, 4, 3),
			want:  core.Shape{8, 8, 8, 4},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inferOne(t, tc.input, tc.conv)
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "got %s want %s", got, tc.want)
		})
	}
}

func TestInfer_ConvErrors(t *testing.T) {
	// Rank mismatch: 2-D conv on a rank-2 tensor.
	_, err := inferOne(t, core.Shape{10, 4}, layer.NewConv(2, 4, 8, 3))
	require.ErrorIs(t, err, core.ErrRankMismatch)

	// Underflow: kernel larger than padded input.
	_, err = inferOne(t, core.Shape{2, 2, 3}, layer.NewConv(2, 3, 8, 7, layer.WithPadding(0)))
	require.ErrorIs(t, err, core.ErrShapeUnderflow)
}

// TestInfer_WindowParamBounds: out-of-range window parameters must surface as
// an error at append time, never divide by zero or mint negative dims.
func TestInfer_WindowParamBounds(t *testing.T) {
	input := core.Shape{8, 8, 3}

	_, err := inferOne(t, input, layer.NewConv(2, 3, 4, 3, layer.WithStride(0)))
	require.ErrorIs(t, err, core.ErrBadParam)

	_, err = inferOne(t, input, layer.NewConv(2, 3, 4, 3, layer.WithStride(-2)))
	require.ErrorIs(t, err, core.ErrBadParam)

	_, err = inferOne(t, input, layer.NewConv(2, 3, 4, 3, layer.WithPadding(-2)))
	require.ErrorIs(t, err, core.ErrBadParam)

	_, err = inferOne(t, input, layer.NewPool(2, layer.MaxPool, layer.WithPoolStride(-1)))
	require.ErrorIs(t, err, core.ErrBadParam)

	_, err = inferOne(t, input, layer.NewPool(2, layer.AvgPool, layer.WithPoolKernel(0)))
	require.ErrorIs(t, err, core.ErrBadParam)
}

func TestInfer_Pooling(t *testing.T) {
	// Default max pool k2 s2 p0.
	got, err := inferOne(t, core.Shape{32, 32, 16}, layer.NewPool(2, layer.MaxPool))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{16, 16, 16}))

	// Odd spatial dim floors: 33 → 16.
	got, err = inferOne(t, core.Shape{33, 33, 16}, layer.NewPool(2, layer.MaxPool))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{16, 16, 16}))

	// DenseNet head pool k3 s2 p1.
	got, err = inferOne(t, core.Shape{32, 32, 64},
		layer.NewPool(2, layer.MaxPool,
			layer.WithPoolKernel(3), layer.WithPoolStride(2), layer.WithPoolPadding(1)))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{16, 16, 64}))

	// Underflow: window 2 on a size-1 dim with no padding.
	_, err = inferOne(t, core.Shape{1, 1, 8}, layer.NewPool(2, layer.AvgPool))
	require.ErrorIs(t, err, core.ErrShapeUnderflow)
}

func TestInfer_IdentityFamilies(t *testing.T) {
	input := core.Shape{16, 16, 8}

	got, err := inferOne(t, input, layer.ReLU())
	require.NoError(t, err)
	require.True(t, got.Equal(input))

	got, err = inferOne(t, input, layer.NewBatchNorm(2, 8))
	require.NoError(t, err)
	require.True(t, got.Equal(input))

	// Declared NumFeatures is not cross-checked against actual channels.
	got, err = inferOne(t, input, layer.NewBatchNorm(2, 999))
	require.NoError(t, err)
	require.True(t, got.Equal(input))

	// BatchNorm still enforces its dimensionality variant.
	_, err = inferOne(t, core.Shape{16}, layer.NewBatchNorm(2, 16))
	require.ErrorIs(t, err, core.ErrRankMismatch)

	// Dropout is identity on any rank (flat or spatial).
	got, err = inferOne(t, core.Shape{64}, layer.NewDropout(2, 0.25))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{64}))
}

func TestInfer_GlobalAvgPoolAndDense(t *testing.T) {
	got, err := inferOne(t, core.Shape{7, 5, 12}, layer.NewGlobalAvgPool(2))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{12}))

	_, err = inferOne(t, core.Shape{12}, layer.NewGlobalAvgPool(2))
	require.ErrorIs(t, err, core.ErrRankMismatch)

	got, err = inferOne(t, core.Shape{64}, layer.NewDense(64, 10))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{10}))

	// Dense rejects non-flat inputs.
	_, err = inferOne(t, core.Shape{8, 8, 3}, layer.NewDense(192, 10))
	require.ErrorIs(t, err, core.ErrRankMismatch)

	// Declared In is not cross-checked (template precondition).
	got, err = inferOne(t, core.Shape{64}, layer.NewDense(48, 10))
	require.NoError(t, err)
	require.True(t, got.Equal(core.Shape{10}))
}

func TestInfer_AddAndConcat(t *testing.T) {
	g := mustGraph(t, core.Shape{8, 8, 4})

	a, err := g.AddLayer(layer.NewConv(2, 4, 16, 3), core.InputNodeID)
	require.NoError(t, err)
	b, err := g.AddLayer(layer.NewConv(2, 4, 16, 1), core.InputNodeID)
	require.NoError(t, err)

	// Identical shapes sum to the same shape.
	sum, err := g.AddLayer(layer.NewAdd(), a, b)
	require.NoError(t, err)
	shape, err := g.ShapeOf(sum)
	require.NoError(t, err)
	require.True(t, shape.Equal(core.Shape{8, 8, 16}))

	// Mismatched channels are rejected for add.
	c, err := g.AddLayer(layer.NewConv(2, 4, 8, 3), core.InputNodeID)
	require.NoError(t, err)
	_, err = g.AddLayer(layer.NewAdd(), a, c)
	require.ErrorIs(t, err, core.ErrShapeMismatch)

	// Concat sums channels over matching non-channel dims.
	cat, err := g.AddLayer(layer.NewConcat(), a, c)
	require.NoError(t, err)
	shape, err = g.ShapeOf(cat)
	require.NoError(t, err)
	require.True(t, shape.Equal(core.Shape{8, 8, 24}))

	// Concat rejects disagreement on a non-channel dim.
	d, err := g.AddLayer(layer.NewConv(2, 4, 16, 3, layer.WithStride(2)), core.InputNodeID)
	require.NoError(t, err)
	_, err = g.AddLayer(layer.NewConcat(), a, d)
	require.ErrorIs(t, err, core.ErrShapeMismatch)

	// Concat rejects rank disagreement.
	flat, err := g.AddLayer(layer.NewGlobalAvgPool(2), a)
	require.NoError(t, err)
	_, err = g.AddLayer(layer.NewConcat(), a, flat)
	require.ErrorIs(t, err, core.ErrShapeMismatch)
}
