// SPDX-License-Identifier: MIT
// Package: busroute/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • strategy = Pairwise
//   • tieBreak = TieBreakLast
//   • logger   = discarding slog.Logger

package builder

import (
	"fmt"
	"log/slog"
)

// Strategy selects how candidate stop pairs are discovered.
type Strategy uint8

const (
	// Pairwise compares every unordered pair of stops: O(S²·B).
	Pairwise Strategy = iota
	// LineIndex inverts the data into line → stops and only compares stops
	// that co-occur on some line: O(Σ k²) for k stops per line.
	LineIndex
)

// String returns the CLI spelling of s.
func (s Strategy) String() string {
	switch s {
	case Pairwise:
		return NamePairwise
	case LineIndex:
		return NameLineIndex
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// ParseStrategy maps a CLI spelling to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case NamePairwise, "":
		return Pairwise, nil
	case NameLineIndex:
		return LineIndex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// TieBreak chooses the single line that labels a bus edge when two stops
// share several lines. The full set is always kept as SharedLines.
type TieBreak uint8

const (
	// TieBreakLast keeps the last shared line in the later stop's line order.
	TieBreakLast TieBreak = iota
	// TieBreakFirst keeps the first shared line in the later stop's line order.
	TieBreakFirst
)

// String returns the CLI spelling of t.
func (t TieBreak) String() string {
	switch t {
	case TieBreakLast:
		return NameTieBreakLast
	case TieBreakFirst:
		return NameTieBreakFirst
	default:
		return fmt.Sprintf("tiebreak(%d)", uint8(t))
	}
}

// ParseTieBreak maps a CLI spelling to a TieBreak.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case NameTieBreakLast, "":
		return TieBreakLast, nil
	case NameTieBreakFirst:
		return TieBreakFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, name)
	}
}

// builderConfig aggregates all knobs used by Build.
// It is passed by value (immutable to callers).
type builderConfig struct {
	strategy Strategy
	tieBreak TieBreak
	logger   *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		strategy: Pairwise,
		tieBreak: TieBreakLast,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
