// Package bfs provides breadth-first search over a core.Network,
// returning fewest-hop routes, parent links, and visit order.
//
// BFS explores stops in increasing hop count from a start stop,
// with optional hooks, hop limiting, and link filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// queueItem pairs a stop with its hop count.
type queueItem struct {
	id    core.StopID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	network *core.Network
	opts    Options
	queue   []queueItem
	visited map[core.StopID]bool
	res     *Result

	// target stops the loop when dequeued; hasTarget false means full traversal.
	target    core.StopID
	hasTarget bool
	found     bool
}

// BFS runs breadth-first search on n starting from start,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or a context error.
func BFS(n *core.Network, start core.StopID, opts ...Option) (*Result, error) {
	w, err := newWalker(n, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath returns one fewest-hop route from `from` to `to`.
//
// The frontier is FIFO and a stop is marked visited when it is enqueued,
// so the first time `to` is dequeued its route is minimal in hops. Ties
// between equal-length routes follow the network's neighbour order.
//
// The boolean is false, with a nil error, when no route exists: that is
// a normal outcome, not a failure. from == to yields the single start step.
func ShortestPath(n *core.Network, from, to core.StopID, opts ...Option) (core.Route, bool, error) {
	w, err := newWalker(n, from, opts)
	if err != nil {
		return nil, false, err
	}
	if !n.HasStop(to) {
		return nil, false, fmt.Errorf("%w: %d", ErrDestinationNotFound, to)
	}
	w.target, w.hasTarget = to, true

	if err = w.loop(); err != nil {
		return nil, false, err
	}
	if !w.found {
		return nil, false, nil
	}
	route, _ := w.res.RouteTo(to)

	return route, true, nil
}

func newWalker(n *core.Network, start core.StopID, opts []Option) (*walker, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasStop(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	size := n.Stats().Stops
	w := &walker{
		network: n,
		opts:    o,
		queue:   make([]queueItem, 0, size),
		visited: make(map[core.StopID]bool, size),
		res: &Result{
			Start:  start,
			Order:  make([]core.StopID, 0, size),
			Depth:  make(map[core.StopID]int, size),
			Parent: make(map[core.StopID]core.StopID, size),
			Via:    make(map[core.StopID]core.Link, size),
		},
	}
	w.enqueue(start, 0)

	return w, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.StopID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target reached, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.id)
		if w.hasTarget && item.id == w.target {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// enqueueNeighbors applies filtering and MaxHops and enqueues each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
		return nil
	}
	neighbors, err := w.network.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nb := range neighbors {
		if w.visited[nb] {
			continue
		}
		via, _ := w.network.Link(item.id, nb)
		if !w.opts.FilterLink(item.id, nb, via) {
			continue
		}
		w.res.Parent[nb] = item.id
		w.res.Via[nb] = via
		w.enqueue(nb, next)
	}

	return nil
}
