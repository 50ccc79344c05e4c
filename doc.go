// Package busroute finds routes through a small city network of bus stops,
// the lines serving them and explicit walking links.
//
// 🚀 What is busroute?
//
//	Two stops are adjacent when they share at least one bus line, or when a
//	walking link joins them. On that graph busroute offers:
//		• All routes: every simple route between two stops (dfs)
//		• Shortest route: one route with the fewest hops (bfs)
//		• Readable output: "Take bus line 4 to stop 1224" (render)
//
// Packages:
//
//	core/     — Stop, Line, Link, Route and the frozen Network
//	builder/  — derives bus and walk links from stops and walks
//	dfs/      — AllPaths, traversal, components
//	bfs/      — ShortestPath, traversal with depths and parents
//	render/   — text and styled output, one-line Compact form
//	dataset/  — built-in datasets and YAML loading
//	cmd/      — allroutes and shortestroute
//
// Quick ASCII example:
//
//	1221 ─walk─ 1222
//	 │ bus 34
//	1224 ─walk─ 1225
//	 │ bus 5      │ bus 100 (back to 1221)
//	1223
//
// Shortest route from 1221 to 1225 is one hop on line 100; the other
// simple route rides line 34 to 1224 and walks.
//
// See the examples in each package for runnable snippets.
package busroute
