// SPDX-License-Identifier: MIT
// Package: busroute/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(stops, walks, opts...). Runs AddStops, BusLinks,
//     WalkLinks in that order and freezes the result.
//   - Determinism: same inputs and options ⇒ identical network, including
//     neighbour order and edge labels.
//   - Pure: no globals, inputs are never modified.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/busroute/core"
)

// Build derives a frozen core.Network from stops and walks.
//
// Stages:
//  1. AddStops: register every stop in input order.
//  2. BusLinks: for every unordered pair of distinct stops with a non-empty
//     line intersection add a bus edge labelled by the tie-break policy.
//     The intersection is taken in the later stop's line order.
//  3. WalkLinks: add every walk, overriding any bus label on that pair.
//
// Neighbour order in the result: bus neighbours in ascending input index,
// then walk neighbours in walk-list order.
//
// Errors (wrapped with the stage name):
//   - core.ErrDuplicateStop if two stops share an ID.
//   - core.ErrUnknownStop if a walk names an undeclared stop.
//   - core.ErrSelfLink if a walk connects a stop to itself.
//
// Complexity:
//   - Pairwise:  O(S²·B) time.
//   - LineIndex: O(S·B + Σ k_l²) time, k_l = stops on line l.
func Build(stops []core.Stop, walks []core.Walk, opts ...Option) (*core.Network, error) {
	cfg := newBuilderConfig(opts...)
	n := core.NewNetwork()

	if err := addStops(n, stops); err != nil {
		return nil, wrapf(MethodBuild, "%d stops", err, len(stops))
	}
	if err := busLinks(n, cfg); err != nil {
		return nil, wrapf(MethodBuild, "strategy %s", err, cfg.strategy)
	}
	if err := walkLinks(n, walks, cfg); err != nil {
		return nil, wrapf(MethodBuild, "%d walks", err, len(walks))
	}
	n.Freeze()

	st := n.Stats()
	cfg.logger.Info("network built",
		slog.Int("stops", st.Stops),
		slog.Int("edges", st.Edges),
		slog.Int("bus_edges", st.BusEdges),
		slog.Int("walk_edges", st.WalkEdges),
		slog.String("strategy", cfg.strategy.String()),
		slog.String("tie_break", cfg.tieBreak.String()),
	)

	return n, nil
}

func addStops(n *core.Network, stops []core.Stop) error {
	for i, s := range stops {
		if err := n.AddStop(s); err != nil {
			return wrapf(MethodAddStops, "stop #%d", err, i)
		}
	}

	return nil
}

// busLinks adds one bus edge for every candidate pair with shared lines.
// Candidates are visited in (i asc, j asc) index order whatever the strategy,
// which fixes the neighbour order.
func busLinks(n *core.Network, cfg builderConfig) error {
	stops := n.Stops() // de-duplicated lines, insertion order

	var candidates []indexPair
	switch cfg.strategy {
	case LineIndex:
		candidates = lineIndexPairs(stops)
	default:
		candidates = allPairs(len(stops))
	}

	for _, p := range candidates {
		a, b := stops[p.i], stops[p.j]
		shared := intersect(b.Lines, a.Lines)
		if len(shared) == 0 {
			continue
		}
		line := pick(shared, cfg.tieBreak)
		if err := n.AddBusLink(a.ID, b.ID, line, shared); err != nil {
			return wrapf(MethodBusLinks, "%d↔%d", err, a.ID, b.ID)
		}
		cfg.logger.Debug("bus link",
			slog.Int("from", int(a.ID)),
			slog.Int("to", int(b.ID)),
			slog.Int("line", int(line)),
			slog.Int("shared", len(shared)),
		)
	}

	return nil
}

func walkLinks(n *core.Network, walks []core.Walk, cfg builderConfig) error {
	for i, w := range walks {
		if err := n.AddWalkLink(w.From, w.To); err != nil {
			return wrapf(MethodWalkLinks, "walk #%d (%d↔%d)", err, i, w.From, w.To)
		}
		cfg.logger.Debug("walk link", slog.Int("from", int(w.From)), slog.Int("to", int(w.To)))
	}

	return nil
}

// pick applies the tie-break policy to a non-empty shared list.
func pick(shared []core.Line, t TieBreak) core.Line {
	if t == TieBreakFirst {
		return shared[0]
	}

	return shared[len(shared)-1]
}
