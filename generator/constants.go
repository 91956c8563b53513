// SPDX-License-Identifier: MIT
// Package generator shared constants: reference defaults, per-template rank
// bounds, published topology tables, and method-name tokens used to prefix
// errors with the template name for context.

package generator

//-----------------------------------------------------------------------------
// Template Method Name Constants
//-----------------------------------------------------------------------------

const (
	// MethodCNN is the canonical name for the plain-CNN template.
	MethodCNN = "CNN"
	// MethodMLP is the canonical name for the MLP template.
	MethodMLP = "MLP"
	// MethodResNet is the canonical name for the ResNet template.
	MethodResNet = "ResNet"
	// MethodDenseNet is the canonical name for the DenseNet template.
	MethodDenseNet = "DenseNet"
	// MethodMobileNetV2 is the canonical name for the MobileNetV2 template.
	MethodMobileNetV2 = "MobileNetV2"
)

//-----------------------------------------------------------------------------
// Reference Defaults (applied when WithDepth/WithWidth are absent)
//-----------------------------------------------------------------------------

// DefaultDepth is the reference layer count for depth-driven templates.
const DefaultDepth = 2

// DefaultWidth is the reference channel/feature width.
const DefaultWidth = 64

// MinOutputCount is the smallest accepted output cardinality.
const MinOutputCount = 1

//-----------------------------------------------------------------------------
// Input Rank Bounds
//-----------------------------------------------------------------------------

// MinSpatialInputRank is the lowest accepted rank for the CNN-family
// templates: one spatial dim plus the channel dim.
const MinSpatialInputRank = 2

// MaxSpatialInputRank is the highest accepted rank for the CNN-family
// templates: three spatial dims plus the channel dim.
const MaxSpatialInputRank = 4

// FlatInputRank is the only accepted rank for the MLP template.
const FlatInputRank = 1

//-----------------------------------------------------------------------------
// Dropout Rates (reference configuration)
//-----------------------------------------------------------------------------

// ConvDropoutRate is the fixed dropout rate of the plain-CNN tail.
const ConvDropoutRate = 0.25

// MLPDropoutRate is the fixed dropout rate between MLP dense layers.
const MLPDropoutRate = 0.25

//-----------------------------------------------------------------------------
// Shared Kernel Sizes
//-----------------------------------------------------------------------------

const (
	// kernelPoint is the 1×1 projection/bottleneck kernel.
	kernelPoint = 1
	// kernelStd is the standard 3×3 kernel.
	kernelStd = 3
	// kernelWide is the 7×7 stem kernel of the DenseNet head.
	kernelWide = 7
)

//-----------------------------------------------------------------------------
// ResNet Topology (basic-block reference layout)
//-----------------------------------------------------------------------------

const (
	// resNetInitialPlanes seeds the running in-planes counter.
	resNetInitialPlanes = 64
	// resNetBlockExpansion is the basic block's channel expansion factor.
	resNetBlockExpansion = 1
	// resNetStages is the number of stages; width doubles entering 2–4.
	resNetStages = 4
	// resNetBlocksPerStage is the basic-block count per stage.
	resNetBlocksPerStage = 2
	// resNetStageStride is the down-sampling stride opening stages 2–4.
	resNetStageStride = 2
)

//-----------------------------------------------------------------------------
// DenseNet Constants (published reference configuration)
//-----------------------------------------------------------------------------

const (
	// denseNetInitFeatures is the configured initial feature width. Note:
	// the head normalization is sized to this constant, not to the head
	// convolution's actual width parameter — preserved published behavior.
	denseNetInitFeatures = 64
	// denseNetGrowthRate is the per-dense-layer channel growth.
	denseNetGrowthRate = 32
	// denseNetBNSize is the bottleneck multiplier (bottleneck = 4×growth).
	denseNetBNSize = 4
	// denseNetDropRate is the dense-layer dropout rate.
	denseNetDropRate = 0
)

// denseNetBlockConfig lists the dense-layer count of each dense block.
var denseNetBlockConfig = [...]int{6, 12, 24, 16}

//-----------------------------------------------------------------------------
// MobileNetV2 Stage Table (reduced two-stage set, fixed for this core;
// the full published table is pruned to leave room for search-driven growth)
//-----------------------------------------------------------------------------

// invertedResidualStage is one row of the MobileNetV2 configuration table.
type invertedResidualStage struct {
	expansion int // channel expansion factor inside the block
	outPlanes int // output channel count
	repeats   int // block count; only the first uses stride
	stride    int // stride of the stage's first block
}

// mobileNetStages is the reduced stage table.
var mobileNetStages = [...]invertedResidualStage{
	{expansion: 1, outPlanes: 16, repeats: 1, stride: 1},
	{expansion: 6, outPlanes: 24, repeats: 2, stride: 1},
}

const (
	// mobileNetInitPlanes seeds the running in-planes counter.
	mobileNetInitPlanes = 32
	// mobileNetHeadExpansion widens the final pointwise convolution.
	mobileNetHeadExpansion = 4
)
