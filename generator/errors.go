// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via %w with the template's method token.
//   • Templates never panic at runtime.

package generator

import "errors"

// ErrBadOutputCount indicates an output cardinality below 1 at construction.
// Usage: if errors.Is(err, ErrBadOutputCount) { /* fix numOutputs */ }.
var ErrBadOutputCount = errors.New("generator: output count must be positive")

// ErrInvalidInputRank indicates an input shape whose rank is outside the
// template's accepted range (CNN-family: rank 2–4; MLP: rank exactly 1).
// Raised at construction time, before any graph is built.
// Usage: if errors.Is(err, ErrInvalidInputRank) { /* reshape the input */ }.
var ErrInvalidInputRank = errors.New("generator: invalid input rank")

// ErrWidthLengthMismatch indicates an explicit per-layer width sequence whose
// length disagrees with the requested depth. MLP only, generation time.
// Usage: if errors.Is(err, ErrWidthLengthMismatch) { /* align widths/depth */ }.
var ErrWidthLengthMismatch = errors.New("generator: widths length does not match depth")

// ErrOptionViolation indicates a generation option with a meaningless value
// (non-positive depth or width, an empty or non-positive widths entry) or an
// option the template does not accept (WithWidths outside MLP).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct the options */ }.
var ErrOptionViolation = errors.New("generator: invalid option value")
