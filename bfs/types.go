// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrStartNotFound is returned when the start stop is absent.
	ErrStartNotFound = errors.New("bfs: start stop not found")

	// ErrDestinationNotFound is returned when the destination stop is absent.
	ErrDestinationNotFound = errors.New("bfs: destination stop not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a stop is enqueued, with its hop count.
	OnEnqueue func(id core.StopID, depth int)

	// OnDequeue is called immediately before a stop is expanded.
	OnDequeue func(id core.StopID, depth int)

	// MaxHops, if > 0, stops exploring beyond this many hops.
	// A value of 0 disables the limit.
	MaxHops int

	// FilterLink can skip an edge by returning false.
	// Called for each edge curr→neighbor with its label.
	FilterLink func(from, to core.StopID, via core.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no hop limit (MaxHops == 0)
//   - no filtering (all links allowed)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(core.StopID, int) {},
		OnDequeue:  func(core.StopID, int) {},
		MaxHops:    0,
		FilterLink: func(_, _ core.StopID, _ core.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.StopID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id core.StopID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxHops stops the search beyond the given number of hops.
//
//	h > 0: limit to h hops
//	h == 0: explicit no limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		switch {
		case h < 0:
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
		default:
			o.MaxHops = h
		}
	}
}

// WithFilterLink skips edges when fn returns false.
func WithFilterLink(fn func(from, to core.StopID, via core.Link) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// NoWalking is a FilterLink that keeps only bus links.
func NoWalking(_, _ core.StopID, via core.Link) bool {
	return via.Mode() == core.ModeBus
}

// Result holds the outcome of a BFS traversal:
//   - Order: stops expanded, in visit sequence.
//   - Depth: hop count from the start for every discovered stop.
//   - Parent: predecessor of every discovered stop except the start.
//   - Via: label of the edge Parent[id]→id.
type Result struct {
	Start  core.StopID
	Order  []core.StopID
	Depth  map[core.StopID]int
	Parent map[core.StopID]core.StopID
	Via    map[core.StopID]core.Link
}

// Reached reports whether dest was discovered.
func (r *Result) Reached(dest core.StopID) bool {
	_, ok := r.Depth[dest]

	return ok
}

// RouteTo reconstructs the route from the start to dest.
// Returns false if dest was not reached.
func (r *Result) RouteTo(dest core.StopID) (core.Route, bool) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, false
	}
	route := make(core.Route, d+1)
	for cur, i := dest, d; i > 0; i-- {
		route[i] = core.Step{Stop: cur, Via: r.Via[cur]}
		cur = r.Parent[cur]
	}
	route[0] = core.Step{Stop: r.Start, Via: core.Start()}

	return route, true
}
