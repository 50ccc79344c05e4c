// Package dfs defines types and options for depth-first search over a
// core.Network: exhaustive simple-path enumeration, plain traversal and
// connected components.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/busroute/core"
)

var (
	// ErrNetworkNil is returned when a nil *core.Network is passed.
	ErrNetworkNil = errors.New("dfs: network is nil")

	// ErrStartNotFound indicates that the start stop does not exist.
	ErrStartNotFound = errors.New("dfs: start stop not found")

	// ErrDestinationNotFound indicates that the destination stop does not exist.
	ErrDestinationNotFound = errors.New("dfs: destination stop not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of a depth-first search.
type Option func(*Options)

// Options holds configurable parameters for DFS and AllPaths.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxHops, if positive, prunes any branch longer than MaxHops edges.
	// 0 means no limit.
	MaxHops int

	// MaxPaths, if positive, stops AllPaths after that many routes.
	// 0 means no limit.
	MaxPaths int

	// FilterLink, if non-nil, is called for each edge before descending.
	// Return false to skip it.
	FilterLink func(from, to core.StopID, via core.Link) bool

	// OnRoute, if non-nil, is called with each route AllPaths records.
	// The route is a private copy. Returning an error aborts the search.
	OnRoute func(r core.Route) error

	// OnVisit, if non-nil, is invoked when DFS first discovers a stop.
	OnVisit func(id core.StopID, depth int)

	// SkippedLinks counts edges rejected by FilterLink. Diagnostic only.
	SkippedLinks int

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - no hop or path limit
//   - no filtering and no hooks
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets the Context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops limits route length to h edges (h > 0); 0 disables the limit,
// negative values are recorded as ErrOptionViolation.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
			return
		}
		o.MaxHops = h
	}
}

// WithMaxPaths stops AllPaths after k routes (k > 0); 0 disables the limit,
// negative values are recorded as ErrOptionViolation.
func WithMaxPaths(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithFilterLink installs an edge filter; see Options.FilterLink.
func WithFilterLink(fn func(from, to core.StopID, via core.Link) bool) Option {
	return func(o *Options) {
		o.FilterLink = fn
	}
}

// WithOnRoute installs a hook receiving each discovered route.
func WithOnRoute(fn func(r core.Route) error) Option {
	return func(o *Options) {
		o.OnRoute = fn
	}
}

// WithOnVisit installs a discovery hook for DFS.
func WithOnVisit(fn func(id core.StopID, depth int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// NoWalking is a FilterLink that keeps only bus links.
func NoWalking(_, _ core.StopID, via core.Link) bool {
	return via.Mode() == core.ModeBus
}

// Result captures the outcome of a plain depth-first traversal.
type Result struct {
	// Order records stops in discovery (pre-order) sequence.
	Order []core.StopID

	// Depth maps each stop to its depth in the DFS tree.
	Depth map[core.StopID]int

	// Parent maps each stop to the stop it was discovered from.
	// The start stop has no entry.
	Parent map[core.StopID]core.StopID

	// SkippedLinks reports how many edges FilterLink rejected.
	SkippedLinks int
}
