// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network storage and its construction-time mutators.
// Policy:
//   - Mutators are for builders only; after Freeze every mutator returns ErrFrozen.
//   - Every adjacency edge is stored in both directions together with its label.
// Determinism:
//   - Neighbour order is insertion order; the builder controls it.

package core

import "fmt"

// Network is the adjacency graph over stops plus the edge-label tables.
//
// A Network is assembled by AddStop/AddBusLink/AddWalkLink and then frozen.
// Once frozen it never changes and is safe for concurrent readers. It is not
// safe to mutate a Network from several goroutines before it is frozen.
type Network struct {
	frozen bool

	// order keeps stop IDs in the order they were added.
	order []StopID
	stops map[StopID]Stop

	// adjacency[id] lists directly reachable stops, in insertion order.
	adjacency map[StopID][]StopID

	// links[{a,b}] is the label of the edge a→b; always mirrored.
	links map[Pair]Link

	// shared[{a,b}] is every line served by both a and b; always mirrored.
	shared map[Pair][]Line
}

// NewNetwork returns an empty, unfrozen Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		stops:     make(map[StopID]Stop),
		adjacency: make(map[StopID][]StopID),
		links:     make(map[Pair]Link),
		shared:    make(map[Pair][]Line),
	}
}

// AddStop registers s. Its line list is copied with duplicates removed,
// keeping the first occurrence of each line.
//
// Errors:
//   - ErrFrozen if the network is frozen.
//   - ErrDuplicateStop if s.ID is already present.
//
// Complexity: O(len(s.Lines)).
func (n *Network) AddStop(s Stop) error {
	if n.frozen {
		return ErrFrozen
	}
	if _, ok := n.stops[s.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateStop, s.ID)
	}

	lines := make([]Line, 0, len(s.Lines))
	seen := make(map[Line]struct{}, len(s.Lines))
	for _, l := range s.Lines {
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		lines = append(lines, l)
	}

	n.stops[s.ID] = Stop{ID: s.ID, Lines: lines}
	n.order = append(n.order, s.ID)
	n.adjacency[s.ID] = nil

	return nil
}

// AddBusLink connects a and b through the bus line `line`, recording
// `shared` as the full set of lines the two stops have in common.
//
// The adjacency is added in both directions if absent. The label is set
// to Bus(line) in both directions, replacing any previous label.
//
// Errors:
//   - ErrFrozen, ErrUnknownStop, ErrSelfLink.
//   - ErrLineNotShared if line is not an element of shared.
func (n *Network) AddBusLink(a, b StopID, line Line, shared []Line) error {
	if err := n.checkEndpoints(a, b); err != nil {
		return err
	}
	found := false
	for _, l := range shared {
		if l == line {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: line %d between %d and %d", ErrLineNotShared, line, a, b)
	}

	n.connect(a, b)
	n.label(a, b, Bus(line))

	lines := make([]Line, len(shared))
	copy(lines, shared)
	n.shared[Pair{From: a, To: b}] = lines
	n.shared[Pair{From: b, To: a}] = lines

	return nil
}

// AddWalkLink connects a and b on foot. A walk label always overrides an
// existing bus label for the same pair; shared lines are kept.
//
// Errors: ErrFrozen, ErrUnknownStop, ErrSelfLink.
func (n *Network) AddWalkLink(a, b StopID) error {
	if err := n.checkEndpoints(a, b); err != nil {
		return err
	}
	n.connect(a, b)
	n.label(a, b, Walking())

	return nil
}

// Freeze makes the network read-only. Calling it twice is harmless.
func (n *Network) Freeze() { n.frozen = true }

// Frozen reports whether Freeze has been called.
func (n *Network) Frozen() bool { return n.frozen }

func (n *Network) checkEndpoints(a, b StopID) error {
	if n.frozen {
		return ErrFrozen
	}
	if _, ok := n.stops[a]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStop, a)
	}
	if _, ok := n.stops[b]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStop, b)
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfLink, a)
	}

	return nil
}

// connect appends each endpoint to the other's adjacency when missing.
func (n *Network) connect(a, b StopID) {
	if _, ok := n.links[Pair{From: a, To: b}]; ok {
		return
	}
	n.adjacency[a] = append(n.adjacency[a], b)
	n.adjacency[b] = append(n.adjacency[b], a)
}

func (n *Network) label(a, b StopID, l Link) {
	n.links[Pair{From: a, To: b}] = l
	n.links[Pair{From: b, To: a}] = l
}
