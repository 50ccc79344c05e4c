package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/busroute/bfs"
	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
)

// ExampleShortestPath prefers a single bus ride over a walk-and-ride
// detour of the same destination.
//
//	1 ─walk─ 2 ─bus 20─ 3
//	└────────bus 10─────┘
func ExampleShortestPath() {
	n, err := builder.Build([]core.Stop{
		{ID: 1, Lines: []core.Line{10}},
		{ID: 2, Lines: []core.Line{20}},
		{ID: 3, Lines: []core.Line{10, 20}},
	}, []core.Walk{{From: 1, To: 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	route, ok, err := bfs.ShortestPath(n, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok, route.Hops())
	for _, s := range route {
		fmt.Println(s.Stop, s.Via)
	}
	// Output:
	// true 1
	// 1 start
	// 3 bus 10
}

// ExampleShortestPath_noRoute shows that an unreachable destination is a
// normal outcome: ok is false and err is nil.
func ExampleShortestPath_noRoute() {
	n, _ := builder.Build([]core.Stop{
		{ID: 1, Lines: []core.Line{10}},
		{ID: 2, Lines: []core.Line{20}},
	}, []core.Walk{{From: 1, To: 2}})

	_, ok, err := bfs.ShortestPath(n, 1, 2, bfs.WithFilterLink(bfs.NoWalking))
	fmt.Println(ok, err)
	// Output:
	// false <nil>
}

// ExampleBFS prints stops grouped by hop count.
func ExampleBFS() {
	n, _ := builder.Build([]core.Stop{
		{ID: 1, Lines: []core.Line{10}},
		{ID: 2, Lines: []core.Line{10, 20}},
		{ID: 3, Lines: []core.Line{20, 30}},
		{ID: 4, Lines: []core.Line{30}},
	}, nil)

	res, err := bfs.BFS(n, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Printf("%d@%d ", id, res.Depth[id])
	}
	fmt.Println()
	// Output:
	// 1@0 2@1 3@2 4@3
}
