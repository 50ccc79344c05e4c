// Package core provides the in-memory transit network used by the route
// searches: stops, bus lines, walking connections and the labelled
// adjacency derived from them.
//
// The Network N = (S, E) is undirected. Two stops are adjacent iff they
// share at least one bus line or an explicit walk connects them. Every edge
// carries a Link label, stored in both directions:
//
//   - Bus(line)  — the edge is travelled on that bus line;
//   - Walking()  — the edge is travelled on foot (overrides any bus label).
//
// Routes are sequences of Steps. The first step always has Via == Start().
//
// Lifecycle:
//
//	n := core.NewNetwork()
//	n.AddStop(core.Stop{ID: 1221, Lines: []core.Line{34, 100}})
//	n.AddStop(core.Stop{ID: 1225, Lines: []core.Line{100}})
//	n.AddBusLink(1221, 1225, 100, []core.Line{100})
//	n.Freeze() // from here on the network is read-only
//
// In practice networks are produced by builder.Build, which derives bus
// links from shared lines and returns a frozen network.
//
// Queries:
//
//	HasStop(id) bool                 // O(1)
//	Stop(id) (Stop, bool)            // O(B)
//	StopIDs() []StopID               // O(V), insertion order
//	Neighbors(id) ([]StopID, error)  // O(deg), insertion order
//	Link(a, b) (Link, bool)          // O(1), symmetric
//	SharedLines(a, b) []Line         // O(B)
//	Stats() Stats                    // O(V·B + E)
//
// Errors:
//
//	ErrUnknownStop, ErrDuplicateStop, ErrSelfLink, ErrLineNotShared,
//	ErrFrozen, ErrBrokenRoute.
package core
