// File: methods.go
// Role: Read-only queries over a Network.
// Policy:
//   - Every slice returned is a fresh copy; callers may modify it freely.
// Determinism:
//   - Stops()/StopIDs() follow insertion order; Neighbors() follows adjacency insertion order.

package core

import (
	"fmt"
	"sort"
)

// Stats is a snapshot of network sizes.
type Stats struct {
	// Stops is the number of stops.
	Stops int
	// Edges counts undirected adjacency edges.
	Edges int
	// BusEdges counts edges currently labelled with a bus line.
	BusEdges int
	// WalkEdges counts edges labelled as walks.
	WalkEdges int
	// Lines is the number of distinct bus lines across all stops.
	Lines int
}

// HasStop reports whether id is part of the network.
// Complexity: O(1).
func (n *Network) HasStop(id StopID) bool {
	_, ok := n.stops[id]

	return ok
}

// Stop returns the stop with the given id.
func (n *Network) Stop(id StopID) (Stop, bool) {
	s, ok := n.stops[id]
	if !ok {
		return Stop{}, false
	}
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)

	return Stop{ID: s.ID, Lines: lines}, true
}

// StopIDs returns every stop ID in insertion order.
// Complexity: O(V).
func (n *Network) StopIDs() []StopID {
	out := make([]StopID, len(n.order))
	copy(out, n.order)

	return out
}

// Stops returns copies of every stop in insertion order.
// Complexity: O(V·B).
func (n *Network) Stops() []Stop {
	out := make([]Stop, 0, len(n.order))
	for _, id := range n.order {
		s, _ := n.Stop(id)
		out = append(out, s)
	}

	return out
}

// Neighbors returns the stops directly reachable from id, in adjacency
// insertion order.
//
// Errors:
//   - ErrUnknownStop if id is not part of the network.
//
// Complexity: O(deg(id)).
func (n *Network) Neighbors(id StopID) ([]StopID, error) {
	if _, ok := n.stops[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStop, id)
	}
	adj := n.adjacency[id]
	out := make([]StopID, len(adj))
	copy(out, adj)

	return out, nil
}

// Degree returns the number of neighbours of id, or 0 if id is unknown.
func (n *Network) Degree(id StopID) int {
	return len(n.adjacency[id])
}

// Link returns the label of the edge from→to and whether the edge exists.
// Labels are symmetric: Link(a, b) == Link(b, a).
// Complexity: O(1).
func (n *Network) Link(from, to StopID) (Link, bool) {
	l, ok := n.links[Pair{From: from, To: to}]

	return l, ok
}

// SharedLines returns every bus line serving both a and b, in the order
// the builder recorded them. A walk-only edge, or no edge, yields nil.
func (n *Network) SharedLines(a, b StopID) []Line {
	lines, ok := n.shared[Pair{From: a, To: b}]
	if !ok {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)

	return out
}

// Stats returns counts of stops, edges by label, and distinct lines.
// Complexity: O(V·B + E).
func (n *Network) Stats() Stats {
	st := Stats{Stops: len(n.order)}
	for p, l := range n.links {
		if p.From > p.To {
			continue // count each undirected edge once
		}
		st.Edges++
		switch l.Mode() {
		case ModeBus:
			st.BusEdges++
		case ModeWalk:
			st.WalkEdges++
		}
	}
	lines := make(map[Line]struct{})
	for _, s := range n.stops {
		for _, l := range s.Lines {
			lines[l] = struct{}{}
		}
	}
	st.Lines = len(lines)

	return st
}

// LineIndex returns, for every bus line, the stops it serves in insertion
// order. The returned lines are sorted ascending.
// Complexity: O(V·B + L log L).
func (n *Network) LineIndex() ([]Line, map[Line][]StopID) {
	idx := make(map[Line][]StopID)
	for _, id := range n.order {
		for _, l := range n.stops[id].Lines {
			idx[l] = append(idx[l], id)
		}
	}
	lines := make([]Line, 0, len(idx))
	for l := range idx {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })

	return lines, idx
}
