// Package dfs implements depth-first search over a core.Network.
//
// What:
//
//   - AllPaths: enumerates every simple route between two stops with
//     classic backtracking. The "on current route" mark of a stop is set
//     on entry and removed by defer on every exit, so a stop can appear in
//     many routes but never twice in one.
//   - DFS: single-source traversal reporting discovery order, depths and
//     parent links.
//   - Components: connected components, optionally bus-only.
//
// Determinism:
//
//	Neighbours are tried in the network's adjacency order, so AllPaths
//	returns routes in the same order on every run.
//
// Complexity:
//
//   - AllPaths:   Time O(P·V) for P simple paths (exponential worst case), Memory O(V)
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E), Memory O(V)
//
// Options:
//
//   - WithContext(ctx)        cancellation.
//   - WithMaxHops(h)          prune routes longer than h hops.
//   - WithMaxPaths(k)         stop after k routes (AllPaths).
//   - WithFilterLink(fn)      skip edges; NoWalking keeps bus links only.
//   - WithOnRoute(fn)         receive each route as it is found (AllPaths).
//   - WithOnVisit(fn)         discovery hook (DFS).
package dfs
