// Package layer defines the closed set of operator descriptors an
// architecture graph is built from: activation, normalization, convolution,
// pooling (max / avg / global-avg), dropout, dense, elementwise-add and
// concatenation.
//
// Descriptors are immutable values. Each variant carries only the numeric
// parameters its shape-transformation rule needs (kernel size, stride,
// padding, channel counts, rate, group count); the numeric semantics of the
// layers live entirely in the downstream compiler. The set is sealed — the
// Layer interface has an unexported marker method — so the shape-inference
// switch in package core can treat it as exhaustive.
//
// Construction:
//
//   - ReLU, NewDense, NewAdd, NewConcat take no dimensionality and are built
//     directly.
//   - NewConv, NewPool, NewGlobalAvgPool, NewBatchNorm, NewDropout take the
//     spatial dimensionality (1, 2 or 3); templates obtain them pre-bound to a
//     rank through the dims.Ops capability bundle instead of calling these
//     directly.
//   - Conv and Pool accept functional options (WithStride, WithPadding,
//     WithGroups, WithPoolKernel, WithPoolStride, WithPoolPadding). Defaults
//     follow the published stub-layer conventions: convolutions pad by
//     kernel/2, pools use kernel 2 with stride equal to the kernel and no
//     padding. These defaults are load-bearing — they are precisely what makes
//     residual main and shortcut branches land on identical shapes.
//
// Determinism: descriptors are plain data; equal construction arguments yield
// equal values, and equality is ordinary Go struct equality.
package layer
