// SPDX-License-Identifier: MIT
// Package: archgraph/layer
//
// layer.go — the sealed operator-descriptor variants.
//
// Contract:
//   • Every variant is an immutable value type; copying is cheap and safe.
//   • Name() returns a stable lowercase token used in error context and tests.
//   • The marker method isLayer() seals the set: package core's shape
//     inference may switch over these types exhaustively.
//   • Constructors never panic and never return errors: parameter validity
//     that depends on tensor shapes is checked by core at append time.

package layer

// Default parameter values shared by the constructors (no magic literals).
const (
	// DefaultConvStride is the stride applied when WithStride is absent.
	DefaultConvStride = 1
	// DefaultConvGroups is the group count applied when WithGroups is absent.
	DefaultConvGroups = 1
	// DefaultPoolKernel is the pooling window applied when WithPoolKernel is absent.
	DefaultPoolKernel = 2
	// paddingUnset marks a Conv padding left for the kernel/2 default.
	paddingUnset = -1
	// poolStrideUnset marks a Pool stride left for the stride=kernel default.
	poolStrideUnset = 0
)

// Layer is the sealed interface implemented by every operator descriptor.
// The unexported marker keeps the variant set closed within this package.
type Layer interface {
	// Name returns the stable lowercase token for this operator family.
	Name() string
	isLayer()
}

// PoolOp selects the reduction applied by a Pool descriptor.
type PoolOp uint8

const (
	// MaxPool reduces each window to its maximum.
	MaxPool PoolOp = iota
	// AvgPool reduces each window to its mean.
	AvgPool
)

// Activation is the identity-shape ReLU marker.
type Activation struct{}

// ReLU returns the activation descriptor. Complexity: O(1).
func ReLU() Activation { return Activation{} }

// Name returns "relu".
func (Activation) Name() string { return "relu" }
func (Activation) isLayer()     {}

// BatchNorm normalizes over NumFeatures channels. Identity shape rule.
// NumFeatures is a declared parameter: it must match the predecessor's channel
// count for the graph to be realizable, but core does not cross-check it
// (templates own that precondition).
type BatchNorm struct {
	// Dims is the spatial dimensionality variant (1, 2 or 3).
	Dims int
	// NumFeatures is the declared channel count being normalized.
	NumFeatures int
}

// NewBatchNorm builds a BatchNorm descriptor for the given dimensionality.
func NewBatchNorm(dims, numFeatures int) BatchNorm {
	return BatchNorm{Dims: dims, NumFeatures: numFeatures}
}

// Name returns "batchnorm".
func (BatchNorm) Name() string { return "batchnorm" }
func (BatchNorm) isLayer()     {}

// Conv describes a (possibly grouped) convolution.
//
// Shape rule (per spatial dim d): out = (d + 2·Padding − Kernel)/Stride + 1,
// floor division; the channel dim becomes Out. In is declared, not checked by
// core (see BatchNorm).
type Conv struct {
	// Dims is the spatial dimensionality variant (1, 2 or 3).
	Dims int
	// In is the declared input channel count.
	In int
	// Out is the produced channel count.
	Out int
	// Kernel is the window extent along every spatial dim.
	Kernel int
	// Stride is the step along every spatial dim.
	Stride int
	// Padding is the per-side zero padding along every spatial dim.
	Padding int
	// Groups partitions channels for grouped/depthwise convolution.
	Groups int
}

// NewConv builds a Conv descriptor. Defaults: stride 1, padding kernel/2,
// groups 1; override via WithStride / WithPadding / WithGroups.
// Complexity: O(len(opts)).
func NewConv(dims, in, out, kernel int, opts ...ConvOption) Conv {
	c := Conv{
		Dims:    dims,
		In:      in,
		Out:     out,
		Kernel:  kernel,
		Stride:  DefaultConvStride,
		Padding: paddingUnset,
		Groups:  DefaultConvGroups,
	}
	for _, opt := range opts {
		opt(&c)
	}
	// Resolve the "same-ish" default only when the caller left padding alone.
	if c.Padding == paddingUnset {
		c.Padding = kernel / 2
	}

	return c
}

// Name returns "conv".
func (Conv) Name() string { return "conv" }
func (Conv) isLayer()     {}

// Pool describes a windowed max or average pooling.
//
// Shape rule (per spatial dim d): out = (d + 2·Padding − Kernel)/Stride + 1,
// floor division; channels are preserved.
type Pool struct {
	// Dims is the spatial dimensionality variant (1, 2 or 3).
	Dims int
	// Op selects max or average reduction.
	Op PoolOp
	// Kernel is the window extent along every spatial dim.
	Kernel int
	// Stride is the step along every spatial dim.
	Stride int
	// Padding is the per-side zero padding along every spatial dim.
	Padding int
}

// NewPool builds a Pool descriptor. Defaults: kernel 2, stride = kernel,
// padding 0; override via WithPoolKernel / WithPoolStride / WithPoolPadding.
// Complexity: O(len(opts)).
func NewPool(dims int, op PoolOp, opts ...PoolOption) Pool {
	p := Pool{
		Dims:   dims,
		Op:     op,
		Kernel: DefaultPoolKernel,
		Stride: poolStrideUnset,
	}
	for _, opt := range opts {
		opt(&p)
	}
	// Stride trails the (possibly overridden) kernel unless set explicitly.
	if p.Stride == poolStrideUnset {
		p.Stride = p.Kernel
	}

	return p
}

// Name returns "maxpool" or "avgpool" according to Op.
func (p Pool) Name() string {
	if p.Op == AvgPool {
		return "avgpool"
	}

	return "maxpool"
}
func (Pool) isLayer() {}

// GlobalAvgPool collapses all spatial dims, keeping only the channel dim.
type GlobalAvgPool struct {
	// Dims is the spatial dimensionality variant (1, 2 or 3).
	Dims int
}

// NewGlobalAvgPool builds a GlobalAvgPool descriptor.
func NewGlobalAvgPool(dims int) GlobalAvgPool { return GlobalAvgPool{Dims: dims} }

// Name returns "globalavgpool".
func (GlobalAvgPool) Name() string { return "globalavgpool" }
func (GlobalAvgPool) isLayer()     {}

// Dropout zeroes activations at the given rate. Identity shape rule.
// Dims == 1 is the flat variant used on rank-1 feature vectors.
type Dropout struct {
	// Dims is the dimensionality variant (1, 2 or 3).
	Dims int
	// Rate is the drop probability in [0,1].
	Rate float64
}

// NewDropout builds a Dropout descriptor for the given dimensionality.
func NewDropout(dims int, rate float64) Dropout { return Dropout{Dims: dims, Rate: rate} }

// Name returns "dropout".
func (Dropout) Name() string { return "dropout" }
func (Dropout) isLayer()     {}

// Dense is a fully connected map from a rank-1 input to (Out,).
// In is declared, not checked by core (see BatchNorm); shapes still flow from
// the declared Out so a downstream compiler sees the template's intent.
type Dense struct {
	// In is the declared flattened input size.
	In int
	// Out is the produced feature count.
	Out int
}

// NewDense builds a Dense descriptor mapping in features to out features.
func NewDense(in, out int) Dense { return Dense{In: in, Out: out} }

// Name returns "dense".
func (Dense) Name() string { return "dense" }
func (Dense) isLayer()     {}

// Add sums exactly two predecessors with identical shapes.
type Add struct{}

// NewAdd builds the elementwise-add descriptor.
func NewAdd() Add { return Add{} }

// Name returns "add".
func (Add) Name() string { return "add" }
func (Add) isLayer()     {}

// Concat joins two or more predecessors along the channel (last) dim.
// All other dims must agree; the result channel count is the sum.
type Concat struct{}

// NewConcat builds the concatenation descriptor.
func NewConcat() Concat { return Concat{} }

// Name returns "concat".
func (Concat) Name() string { return "concat" }
func (Concat) isLayer()     {}
