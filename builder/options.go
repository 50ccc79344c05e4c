// SPDX-License-Identifier: MIT
// Package: busroute/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     Build itself never panics.

package builder

import "log/slog"

// Option customizes Build by mutating a builderConfig before construction.
type Option func(*builderConfig)

// WithStrategy selects the pair-discovery strategy.
// Panics on an undefined Strategy value.
func WithStrategy(s Strategy) Option {
	if s != Pairwise && s != LineIndex {
		panic("builder: WithStrategy(" + s.String() + ")")
	}

	return func(c *builderConfig) { c.strategy = s }
}

// WithTieBreak selects which shared line labels a multi-line bus edge.
// Panics on an undefined TieBreak value.
func WithTieBreak(t TieBreak) Option {
	if t != TieBreakLast && t != TieBreakFirst {
		panic("builder: WithTieBreak(" + t.String() + ")")
	}

	return func(c *builderConfig) { c.tieBreak = t }
}

// WithLogger routes construction diagnostics (one debug record per edge,
// one info record per build) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}

	return func(c *builderConfig) { c.logger = l }
}
