package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
	"github.com/katalvlaran/busroute/dfs"
)

// ExampleAllPaths enumerates every simple route on a small square:
//
//	1 ─bus 10─ 2
//	│          │
//	walk     bus 20
//	│          │
//	3 ─bus 30─ 4
func ExampleAllPaths() {
	n, err := builder.Build([]core.Stop{
		{ID: 1, Lines: []core.Line{10}},
		{ID: 2, Lines: []core.Line{10, 20}},
		{ID: 3, Lines: []core.Line{30}},
		{ID: 4, Lines: []core.Line{20, 30}},
	}, []core.Walk{{From: 1, To: 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	routes, err := dfs.AllPaths(n, 1, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, r := range routes {
		fmt.Println(i+1, r.Stops())
	}
	// Output:
	// 1 [1 2 4]
	// 2 [1 3 4]
}

// ExampleComponents splits a network into bus-only islands.
func ExampleComponents() {
	n, _ := builder.Build([]core.Stop{
		{ID: 1, Lines: []core.Line{10}},
		{ID: 2, Lines: []core.Line{10}},
		{ID: 3, Lines: []core.Line{30}},
	}, []core.Walk{{From: 2, To: 3}})

	withWalks, _ := dfs.Components(n)
	busOnly, _ := dfs.Components(n, dfs.WithFilterLink(dfs.NoWalking))
	fmt.Println(withWalks)
	fmt.Println(busOnly)
	// Output:
	// [[1 2 3]]
	// [[1 2] [3]]
}
