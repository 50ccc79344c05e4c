package dfs

import (
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// pathWalker holds the backtracking state of one AllPaths call.
type pathWalker struct {
	network *core.Network
	opts    Options
	dest    core.StopID

	// onPath marks the stops of the current partial route.
	onPath map[core.StopID]bool
	path   core.Route
	routes []core.Route
	done   bool
}

// AllPaths returns every simple route from `from` to `to`.
//
// Routes are produced in discovery order: neighbours are tried in the
// network's adjacency order, and reaching `to` records the route and ends
// that branch. A stop is never repeated inside one route but may appear in
// many routes. from == to yields exactly one single-step route.
//
// An empty (non-nil) slice with a nil error means no route exists.
//
// Errors: ErrNetworkNil, ErrStartNotFound, ErrDestinationNotFound,
// ErrOptionViolation, context errors, and OnRoute hook errors (wrapped).
//
// Complexity: exponential in the worst case (the number of simple paths);
// use WithMaxHops or WithMaxPaths on large networks.
func AllPaths(n *core.Network, from, to core.StopID, opts ...Option) ([]core.Route, error) {
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
	if !n.HasStop(from) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, from)
	}
	if !n.HasStop(to) {
		return nil, fmt.Errorf("%w: %d", ErrDestinationNotFound, to)
	}

	w := &pathWalker{
		network: n,
		opts:    o,
		dest:    to,
		onPath:  make(map[core.StopID]bool),
		path:    core.NewRoute(from),
		routes:  []core.Route{},
	}
	if err := w.explore(from); err != nil {
		return w.routes, err
	}

	return w.routes, nil
}

// explore extends the current route from id. The onPath mark on id is
// removed on every return path.
func (w *pathWalker) explore(id core.StopID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if id == w.dest {
		return w.record()
	}

	w.onPath[id] = true
	defer delete(w.onPath, id)

	if w.opts.MaxHops > 0 && w.path.Hops() >= w.opts.MaxHops {
		return nil
	}

	nbs, err := w.network.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	for _, nb := range nbs {
		if w.onPath[nb] {
			continue
		}
		via, _ := w.network.Link(id, nb)
		if w.opts.FilterLink != nil && !w.opts.FilterLink(id, nb, via) {
			w.opts.SkippedLinks++
			continue
		}
		if err = w.descend(core.Step{Stop: nb, Via: via}); err != nil {
			return err
		}
		if w.done {
			return nil
		}
	}

	return nil
}

// descend pushes step, explores from it and pops it again.
func (w *pathWalker) descend(step core.Step) error {
	w.path = append(w.path, step)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	return w.explore(step.Stop)
}

// record stores a private copy of the current route.
func (w *pathWalker) record() error {
	r := w.path.Clone()
	if w.opts.OnRoute != nil {
		if err := w.opts.OnRoute(r.Clone()); err != nil {
			return fmt.Errorf("dfs: OnRoute hook for route #%d: %w", len(w.routes)+1, err)
		}
	}
	w.routes = append(w.routes, r)
	if w.opts.MaxPaths > 0 && len(w.routes) >= w.opts.MaxPaths {
		w.done = true
	}

	return nil
}
