// SPDX-License-Identifier: MIT
// Package generator_test: plain-CNN template — pooling cadence, tail layout,
// channel threading.
package generator_test

import (
	"testing"

	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/generator"
	"github.com/katalvlaran/archgraph/layer"
	"github.com/stretchr/testify/require"
)

// TestCNN_PoolingCadence_Depth8: ⌊8/4⌋ = 2 ⇒ pooling after iterations 2, 4
// and 6 but never after the final iteration.
func TestCNN_PoolingCadence_Depth8(t *testing.T) {
	t.Parallel()

	cnn, err := generator.NewCNN(10, core.Shape{32, 32, 3})
	require.NoError(t, err)
	g, err := cnn.Generate(generator.WithDepth(8), generator.WithWidth(16))
	require.NoError(t, err)

	iter := []string{"relu", "batchnorm", "conv"}
	pooled := append(append([]string{}, iter...), "maxpool")
	var want []string
	for i := 1; i <= 8; i++ {
		if i == 2 || i == 4 || i == 6 {
			want = append(want, pooled...)
		} else {
			want = append(want, iter...)
		}
	}
	want = append(want, "globalavgpool", "dropout", "dense", "relu", "dense")
	require.Equal(t, want, layerNames(g))
	require.Equal(t, 3, countByName(g, "maxpool"))

	// Tail denses: dense(→16), a relu between, then dense(16→10).
	placed := g.Layers()
	hidden, ok := placed[len(placed)-3].Layer.(layer.Dense)
	require.True(t, ok)
	require.Equal(t, layer.Dense{In: 16, Out: 16}, hidden)
	final, ok := placed[len(placed)-1].Layer.(layer.Dense)
	require.True(t, ok)
	require.Equal(t, layer.Dense{In: 16, Out: 10}, final)

	require.True(t, finalShape(t, g).Equal(core.Shape{10}))
}

// TestCNN_PoolingCadence_ShallowDepth: ⌊depth/4⌋ == 0 ⇒ pooling after every
// iteration, including the last.
func TestCNN_PoolingCadence_ShallowDepth(t *testing.T) {
	t.Parallel()

	cnn, err := generator.NewCNN(10, core.Shape{32, 32, 3})
	require.NoError(t, err)
	g, err := cnn.Generate() // DefaultDepth = 2, poolEvery = 0
	require.NoError(t, err)

	want := []string{
		"relu", "batchnorm", "conv", "maxpool",
		"relu", "batchnorm", "conv", "maxpool",
		"globalavgpool", "dropout", "dense", "relu", "dense",
	}
	require.Equal(t, want, layerNames(g))
}

// TestCNN_ChannelThreading: the first normalization covers the input's
// channels, later ones the running width; convolutions declare the threaded
// input channel count.
func TestCNN_ChannelThreading(t *testing.T) {
	t.Parallel()

	cnn, err := generator.NewCNN(5, core.Shape{32, 32, 3})
	require.NoError(t, err)
	g, err := cnn.Generate(generator.WithDepth(4), generator.WithWidth(16))
	require.NoError(t, err)

	var norms []layer.BatchNorm
	var convs []layer.Conv
	for _, pl := range g.Layers() {
		switch v := pl.Layer.(type) {
		case layer.BatchNorm:
			norms = append(norms, v)
		case layer.Conv:
			convs = append(convs, v)
		}
	}
	require.Len(t, norms, 4)
	require.Equal(t, 3, norms[0].NumFeatures)
	for _, bn := range norms[1:] {
		require.Equal(t, 16, bn.NumFeatures)
	}
	require.Len(t, convs, 4)
	require.Equal(t, 3, convs[0].In)
	for _, c := range convs {
		require.Equal(t, 16, c.Out)
		require.Equal(t, 3, c.Kernel)
		require.Equal(t, 1, c.Stride)
	}
	for _, c := range convs[1:] {
		require.Equal(t, 16, c.In)
	}

	// Fixed tail dropout rate.
	var drops []layer.Dropout
	for _, pl := range g.Layers() {
		if d, ok := pl.Layer.(layer.Dropout); ok {
			drops = append(drops, d)
		}
	}
	require.Len(t, drops, 1)
	require.Equal(t, generator.ConvDropoutRate, drops[0].Rate)
}
