// SPDX-License-Identifier: MIT
// Package: archgraph/generator
//
// options.go — functional generation options and their deterministic
// resolution into an immutable genConfig.
//
// Design:
//   • genConfig is the single source of truth for generation knobs.
//   • newGenConfig applies options in order (later overrides earlier) and
//     validates the result; invalid values surface as ErrOptionViolation so
//     Generate never panics.
//   • widths == nil means "broadcast width over depth" (MLP) or simply
//     "unset" (all other templates, which must reject an explicit slice).

package generator

import "fmt"

// Option configures one Generate call.
type Option func(*genConfig)

// genConfig aggregates the generation knobs. Passed by value after
// resolution; immutable to templates.
type genConfig struct {
	depth  int   // layer count for depth-driven templates
	width  int   // broadcast channel/feature width
	widths []int // MLP-only explicit per-layer widths (nil = broadcast)
}

// WithDepth overrides the default depth (DefaultDepth).
func WithDepth(depth int) Option {
	return func(c *genConfig) { c.depth = depth }
}

// WithWidth overrides the default width (DefaultWidth).
func WithWidth(width int) Option {
	return func(c *genConfig) { c.width = width }
}

// WithWidths supplies explicit per-layer widths (MLP only). The slice is
// copied; its length must equal the effective depth.
func WithWidths(widths []int) Option {
	return func(c *genConfig) { c.widths = append([]int(nil), widths...) }
}

// newGenConfig resolves options over the reference defaults and validates
// every knob. Length-vs-depth agreement for widths is the template's check
// (ErrWidthLengthMismatch belongs to MLP semantics, not option parsing).
// Complexity: O(len(opts) + len(widths)).
func newGenConfig(opts ...Option) (genConfig, error) {
	cfg := genConfig{depth: DefaultDepth, width: DefaultWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.depth < 1 {
		return genConfig{}, fmt.Errorf("depth=%d (must be ≥ 1): %w", cfg.depth, ErrOptionViolation)
	}
	if cfg.width < 1 {
		return genConfig{}, fmt.Errorf("width=%d (must be ≥ 1): %w", cfg.width, ErrOptionViolation)
	}
	if cfg.widths != nil && len(cfg.widths) == 0 {
		return genConfig{}, fmt.Errorf("widths is empty: %w", ErrOptionViolation)
	}
	for i, w := range cfg.widths {
		if w < 1 {
			return genConfig{}, fmt.Errorf("widths[%d]=%d (must be ≥ 1): %w", i, w, ErrOptionViolation)
		}
	}

	return cfg, nil
}

// wrapOption prefixes an option-resolution error with the template's token.
func wrapOption(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// rejectWidths enforces that templates without per-layer width semantics
// received no explicit widths slice.
func rejectWidths(method string, cfg genConfig) error {
	if cfg.widths != nil {
		return fmt.Errorf("%s: WithWidths is only supported by the MLP template: %w",
			method, ErrOptionViolation)
	}

	return nil
}
