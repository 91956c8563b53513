// SPDX-License-Identifier: MIT
// Package: archgraph/layer
//
// options.go — functional options for Conv and Pool descriptors.
//
// Contract:
//   • Options mutate the descriptor under construction and are applied
//     in order inside NewConv / NewPool (last-wins semantics).
//   • Options never panic; out-of-range values surface later as core
//     shape-inference errors at append time.

package layer

// ConvOption configures a Conv descriptor during NewConv.
type ConvOption func(*Conv)

// WithStride overrides the default stride (1).
func WithStride(stride int) ConvOption {
	return func(c *Conv) { c.Stride = stride }
}

// WithPadding overrides the default padding (kernel/2).
func WithPadding(padding int) ConvOption {
	return func(c *Conv) { c.Padding = padding }
}

// WithGroups overrides the default group count (1). Setting groups equal to
// the channel count yields a depthwise convolution.
func WithGroups(groups int) ConvOption {
	return func(c *Conv) { c.Groups = groups }
}

// PoolOption configures a Pool descriptor during NewPool.
type PoolOption func(*Pool)

// WithPoolKernel overrides the default window (2).
func WithPoolKernel(kernel int) PoolOption {
	return func(p *Pool) { p.Kernel = kernel }
}

// WithPoolStride overrides the default stride (= kernel).
func WithPoolStride(stride int) PoolOption {
	return func(p *Pool) { p.Stride = stride }
}

// WithPoolPadding overrides the default padding (0).
func WithPoolPadding(padding int) PoolOption {
	return func(p *Pool) { p.Padding = padding }
}
