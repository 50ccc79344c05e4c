package dataset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/busroute/bfs"
	"github.com/katalvlaran/busroute/dataset"
	"github.com/katalvlaran/busroute/render"
)

func ExampleLoad() {
	d, err := dataset.Load(strings.NewReader(`
name: corner
stops:
  - {id: 1, lines: [10]}
  - {id: 2, lines: [10, 20]}
  - {id: 3, lines: [20]}
query: {from: 1, to: 3}
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := d.Network()
	route, ok, _ := bfs.ShortestPath(n, d.Query.From, d.Query.To)
	fmt.Println(ok, render.Compact(route))
	// Output:
	// true 1 -10-> 2 -20-> 3
}
