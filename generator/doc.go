// Package generator holds the five architecture templates that synthesize
// neural-network graphs from hyperparameters: plain CNN, MLP, ResNet,
// DenseNet and MobileNetV2.
//
// A template is constructed once with its output count and input shape —
// construction validates the input rank (ErrInvalidInputRank) and resolves
// the dimensional operator bundle — and can then Generate any number of
// independent graphs:
//
//	gen, err := generator.NewResNet(10, core.Shape{32, 32, 3})
//	if err != nil { ... }
//	g, err := gen.Generate(generator.WithWidth(64))
//
// Knobs:
//
//   - WithDepth — layer count where the template is depth-driven (CNN, MLP);
//     the published ResNet/DenseNet/MobileNetV2 topologies fix their own
//     depth and ignore it.
//   - WithWidth — channel/feature width (CNN conv filters, MLP broadcast
//     width, ResNet/DenseNet first-convolution width); MobileNetV2's stage
//     table fixes its widths and ignores it.
//   - WithWidths — MLP only: explicit per-layer widths whose length must
//     equal the depth (ErrWidthLengthMismatch otherwise). The other templates
//     reject it with ErrOptionViolation.
//
// Defaults are DefaultDepth (2) and DefaultWidth (64).
//
// Determinism & concurrency: generators hold only immutable state (output
// count, a copy of the input shape, the resolved dims.Ops bundle). All
// running state — frontier node ids, channel accumulators, the running
// in-planes counter of the residual templates — is local to one Generate
// call, so a single generator may serve concurrent Generate calls and equal
// arguments always reproduce identical graphs, node for node.
//
// Failure model: ErrBadOutputCount and ErrInvalidInputRank at construction;
// ErrOptionViolation and ErrWidthLengthMismatch at generation; anything else
// would be a core shape-inference error, and the templates are wired so that
// none occurs for any accepted input rank and positive depth/width (large
// enough spatially for the strided templates — see ErrShapeUnderflow in core).
package generator
