// Package bfs provides breadth-first search over a core.Network: a full
// traversal (visit order, hop depths, parent links) and a fewest-hop route
// query between two stops.
//
// What
//
//   - BFS(n, start, opts...) explores every stop reachable from start in
//     non-decreasing hop count and returns a Result:
//   - Order:  stops in expansion order
//   - Depth:  stop → hops from start
//   - Parent: stop → predecessor in the BFS tree
//   - Via:    stop → label of the edge from its parent
//   - ShortestPath(n, from, to, opts...) stops as soon as `to` is dequeued
//     and returns the route as core.Route. (nil, false, nil) means "no route".
//
// Determinism
//
//	Neighbours are expanded in the network's adjacency order, so the visit
//	sequence and the chosen route among equal-length ones are reproducible.
//
// Complexity (V = stops, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	route, ok, err := bfs.ShortestPath(n, 1221, 1225)
//	switch {
//	case err != nil:
//		// ErrNetworkNil, ErrStartNotFound, ErrDestinationNotFound, ErrOptionViolation, ctx error
//	case !ok:
//		// no route
//	}
//
//	// Bus only, at most three hops:
//	route, ok, err = bfs.ShortestPath(n, 1221, 1225,
//		bfs.WithFilterLink(bfs.NoWalking),
//		bfs.WithMaxHops(3),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no hop limit, no filtering.
//   - WithContext(ctx):      set a custom context for cancellation.
//   - WithMaxHops(h):        do not expand beyond h hops (>0; 0 = no limit).
//   - WithFilterLink(fn):    skip edges for which fn(from, to, via) == false.
//   - WithOnEnqueue(fn):     hook when a stop is enqueued.
//   - WithOnDequeue(fn):     hook immediately before a stop is expanded.
package bfs
