package builder

import (
	"sort"

	"github.com/katalvlaran/busroute/core"
)

// indexPair is an unordered stop pair expressed as input indices, i < j.
type indexPair struct{ i, j int }

// allPairs enumerates every i < j pair in lexicographic order.
func allPairs(n int) []indexPair {
	if n < 2 {
		return nil
	}
	out := make([]indexPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, indexPair{i: i, j: j})
		}
	}

	return out
}

// lineIndexPairs returns only the pairs that co-occur on at least one line,
// in the same lexicographic order allPairs would visit them.
func lineIndexPairs(stops []core.Stop) []indexPair {
	byLine := make(map[core.Line][]int)
	for i, s := range stops {
		for _, l := range s.Lines {
			byLine[l] = append(byLine[l], i)
		}
	}

	seen := make(map[indexPair]struct{})
	var out []indexPair
	for _, members := range byLine {
		for x := 0; x < len(members); x++ {
			for y := x + 1; y < len(members); y++ {
				p := indexPair{i: members[x], j: members[y]}
				if _, ok := seen[p]; ok {
					continue
				}
				seen[p] = struct{}{}
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].i != out[b].i {
			return out[a].i < out[b].i
		}
		return out[a].j < out[b].j
	})

	return out
}

// intersect returns the elements of order that also occur in other,
// keeping order's sequence.
func intersect(order, other []core.Line) []core.Line {
	if len(order) == 0 || len(other) == 0 {
		return nil
	}
	set := make(map[core.Line]struct{}, len(other))
	for _, l := range other {
		set[l] = struct{}{}
	}
	var out []core.Line
	for _, l := range order {
		if _, ok := set[l]; ok {
			out = append(out, l)
		}
	}

	return out
}
