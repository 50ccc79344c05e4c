// Package dfs implements depth-first search on core.Network: exhaustive
// simple-route enumeration (AllPaths), single-source traversal (DFS) and
// connected components (Components).
//
// Key features:
//   - AllPaths(n, from, to, opts...): every simple route, backtracking
//   - DFS(n, start, opts...): pre-order discovery, depths, parents
//   - Components(n): stop groups reachable from one another
//   - Options: cancellation, hop/route limits, link filtering, hooks
//
// Errors:
//
//   - ErrNetworkNil            if n is nil.
//   - ErrStartNotFound         if the start stop is missing.
//   - ErrDestinationNotFound   if the destination stop is missing.
//   - ErrOptionViolation       for negative limits.
//   - context.Canceled         if ctx is done.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// dfsWalker encapsulates state during a plain traversal.
type dfsWalker struct {
	network *core.Network
	opts    Options
	visited map[core.StopID]bool
	res     *Result
}

// DFS performs a depth-first traversal from start and returns discovery
// order, depths and parent links. MaxHops limits depth; FilterLink prunes
// edges. Returns the partial result together with any context error.
func DFS(n *core.Network, start core.StopID, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasStop(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	w := &dfsWalker{
		network: n,
		opts:    o,
		visited: make(map[core.StopID]bool),
		res: &Result{
			Depth:  make(map[core.StopID]int),
			Parent: make(map[core.StopID]core.StopID),
		},
	}
	err := w.traverse(start, 0)
	w.res.SkippedLinks = w.opts.SkippedLinks

	return w.res, err
}

// traverse visits id at the given depth and recurses into unvisited neighbours.
func (w *dfsWalker) traverse(id core.StopID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(id, depth)
	}
	if w.opts.MaxHops > 0 && depth >= w.opts.MaxHops {
		return nil
	}

	nbs, err := w.network.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	for _, nb := range nbs {
		if w.visited[nb] {
			continue
		}
		if w.opts.FilterLink != nil {
			via, _ := w.network.Link(id, nb)
			if !w.opts.FilterLink(id, nb, via) {
				w.opts.SkippedLinks++
				continue
			}
		}
		w.res.Parent[nb] = id
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Components groups stops into connected components. Components are listed
// in order of their first stop's insertion; stops within a component are in
// DFS discovery order. opts are forwarded to DFS: FilterLink(NoWalking)
// gives the bus-only components, while MaxHops would split components.
func Components(n *core.Network, opts ...Option) ([][]core.StopID, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	seen := make(map[core.StopID]bool)
	var out [][]core.StopID
	for _, id := range n.StopIDs() {
		if seen[id] {
			continue
		}
		res, err := DFS(n, id, opts...)
		if err != nil {
			return nil, err
		}
		for _, s := range res.Order {
			seen[s] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
