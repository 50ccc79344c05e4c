// Package builder defines shared constants used by the network builder so
// that error prefixes and option names stay consistent.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the stage that produced them.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build entry point.
	MethodBuild = "Build"
	// MethodAddStops is the stage registering stops.
	MethodAddStops = "AddStops"
	// MethodBusLinks is the stage deriving bus links from shared lines.
	MethodBusLinks = "BusLinks"
	// MethodWalkLinks is the stage adding explicit walks.
	MethodWalkLinks = "WalkLinks"
)

//-----------------------------------------------------------------------------
// Strategy and tie-break names (CLI / config spelling)
//-----------------------------------------------------------------------------

const (
	// NamePairwise selects the all-pairs comparison strategy.
	NamePairwise = "pairwise"
	// NameLineIndex selects the inverted line → stops strategy.
	NameLineIndex = "line-index"

	// NameTieBreakLast keeps the last shared line (reference behaviour).
	NameTieBreakLast = "last"
	// NameTieBreakFirst keeps the first shared line.
	NameTieBreakFirst = "first"
)
