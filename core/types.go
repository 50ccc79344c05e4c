// Package core defines the central transit types: Stop, Walk, Link, Step,
// Route and the frozen Network produced by the builder package.
//
// This file declares identifiers, the tagged Link variant, sentinel errors,
// and the Stop/Walk/Pair value types.
//
// Errors:
//
//	ErrUnknownStop     - a stop ID is not part of the network.
//	ErrDuplicateStop   - a stop ID was added twice.
//	ErrSelfLink        - a link or walk connects a stop to itself.
//	ErrLineNotShared   - a bus label names a line outside the shared set.
//	ErrFrozen          - a mutator was called after Freeze.
//	ErrBrokenRoute     - a Route does not follow the network's links.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core network operations.
var (
	// ErrUnknownStop indicates an operation referenced a stop absent from the network.
	ErrUnknownStop = errors.New("core: unknown stop")

	// ErrDuplicateStop indicates the same stop ID was added more than once.
	ErrDuplicateStop = errors.New("core: duplicate stop")

	// ErrSelfLink indicates an attempt to connect a stop to itself.
	ErrSelfLink = errors.New("core: stop cannot link to itself")

	// ErrLineNotShared indicates a bus label that is not among the shared lines.
	ErrLineNotShared = errors.New("core: bus line not shared by both stops")

	// ErrFrozen indicates a mutation was attempted on a frozen network.
	ErrFrozen = errors.New("core: network is frozen")

	// ErrBrokenRoute indicates a route that cannot be walked on the network.
	ErrBrokenRoute = errors.New("core: route does not follow network links")
)

// StopID identifies a bus stop.
type StopID int

// Line is a bus line number.
type Line int

// Stop is a location served by zero or more bus lines.
type Stop struct {
	// ID is the unique identifier of the stop.
	ID StopID

	// Lines lists the bus lines serving the stop, in declaration order.
	Lines []Line
}

// Serves reports whether line l stops here.
func (s Stop) Serves(l Line) bool {
	for _, x := range s.Lines {
		if x == l {
			return true
		}
	}

	return false
}

// Walk is an explicit, unordered walking connection between two stops.
type Walk struct {
	From StopID
	To   StopID
}

// Pair is an ordered (From, To) key into the network's label tables.
type Pair struct {
	From StopID
	To   StopID
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// Mode tells how a step of a route is travelled.
type Mode uint8

const (
	// ModeStart marks the synthetic first step of every route.
	ModeStart Mode = iota
	// ModeWalk marks a step made on foot.
	ModeWalk
	// ModeBus marks a step made on a bus line.
	ModeBus
)

// String returns "start", "walk" or "bus".
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeWalk:
		return "walk"
	case ModeBus:
		return "bus"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Link is the tagged variant {Start, Walk, Bus(line)}.
//
// Its fields are unexported so that a bus link always carries a line:
// build values with Start, Walking or Bus.
type Link struct {
	mode Mode
	line Line
}

// Start returns the link of the synthetic first step.
func Start() Link { return Link{mode: ModeStart} }

// Walking returns a walk link.
func Walking() Link { return Link{mode: ModeWalk} }

// Bus returns a link travelled on line l.
func Bus(l Line) Link { return Link{mode: ModeBus, line: l} }

// Mode returns the link's mode.
func (l Link) Mode() Mode { return l.mode }

// Line returns the bus line and true for bus links, and 0, false otherwise.
func (l Link) Line() (Line, bool) {
	if l.mode != ModeBus {
		return 0, false
	}

	return l.line, true
}

// String renders the link as "start", "walk" or "bus N".
func (l Link) String() string {
	if l.mode == ModeBus {
		return fmt.Sprintf("bus %d", l.line)
	}

	return l.mode.String()
}
