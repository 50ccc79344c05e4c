// File: route.go
// Role: Step and Route values returned by the bfs and dfs packages.
// Determinism:
//   - A Route is an ordered value; nothing here reorders steps.

package core

import "fmt"

// Step is one hop of a route: the stop arrived at and how it was reached.
type Step struct {
	Stop StopID
	Via  Link
}

// Route is an ordered sequence of steps. The first step has Via == Start().
type Route []Step

// NewRoute returns a route holding only the start step at origin.
func NewRoute(origin StopID) Route {
	return Route{{Stop: origin, Via: Start()}}
}

// Hops returns the number of edges travelled (len-1, never negative).
func (r Route) Hops() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Origin returns the first stop, or false for an empty route.
func (r Route) Origin() (StopID, bool) {
	if len(r) == 0 {
		return 0, false
	}

	return r[0].Stop, true
}

// Destination returns the last stop, or false for an empty route.
func (r Route) Destination() (StopID, bool) {
	if len(r) == 0 {
		return 0, false
	}

	return r[len(r)-1].Stop, true
}

// Stops returns the visited stop IDs in order.
func (r Route) Stops() []StopID {
	out := make([]StopID, len(r))
	for i, s := range r {
		out[i] = s.Stop
	}

	return out
}

// IsSimple reports whether no stop appears twice.
func (r Route) IsSimple() bool {
	seen := make(map[StopID]struct{}, len(r))
	for _, s := range r {
		if _, dup := seen[s.Stop]; dup {
			return false
		}
		seen[s.Stop] = struct{}{}
	}

	return true
}

// Clone returns an independent copy of r.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// Verify checks r against n: a Start first step on a known stop, and every
// later step following an existing adjacency with the exact stored label.
// Violations wrap ErrBrokenRoute.
//
// Complexity: O(len(r)).
func (r Route) Verify(n *Network) error {
	if len(r) == 0 {
		return fmt.Errorf("%w: empty route", ErrBrokenRoute)
	}
	if r[0].Via != Start() {
		return fmt.Errorf("%w: first step is %s, want start", ErrBrokenRoute, r[0].Via)
	}
	if !n.HasStop(r[0].Stop) {
		return fmt.Errorf("%w: origin %d: %w", ErrBrokenRoute, r[0].Stop, ErrUnknownStop)
	}
	for i := 1; i < len(r); i++ {
		prev, cur := r[i-1].Stop, r[i]
		want, ok := n.Link(prev, cur.Stop)
		if !ok {
			return fmt.Errorf("%w: step %d: %d and %d are not adjacent", ErrBrokenRoute, i, prev, cur.Stop)
		}
		if want != cur.Via {
			return fmt.Errorf("%w: step %d: %d→%d is %s, route says %s", ErrBrokenRoute, i, prev, cur.Stop, want, cur.Via)
		}
	}

	return nil
}
