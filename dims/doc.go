// Package dims resolves a spatial rank (1, 2 or 3) to the operator-family
// capability bundle the generator templates build with.
//
// The bundle replaces runtime class lookup: Resolve is called once at
// generator construction, and the returned Ops value hands out convolution,
// pooling, global-pooling, normalization and dropout descriptors pre-bound to
// the resolved dimensionality. Ops is immutable and stateless; Resolve is a
// pure lookup.
//
// Ranks outside {1, 2, 3} fail with ErrUnsupportedRank. Templates pre-filter
// via their own input-rank checks, so in practice this error is unreachable
// through the generator package.
package dims
