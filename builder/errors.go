// SPDX-License-Identifier: MIT
// Package: busroute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Stop-level failures surface the core sentinels (core.ErrUnknownStop,
//     core.ErrDuplicateStop, core.ErrSelfLink) wrapped with stage context.
//   • Option constructors panic on meaningless values; Build never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not know.
var ErrUnknownStrategy = errors.New("builder: unknown strategy")

// ErrUnknownTieBreak indicates a tie-break name that ParseTieBreak does not know.
var ErrUnknownTieBreak = errors.New("builder: unknown tie-break policy")

// wrapf prefixes err with the stage name and a formatted detail while
// keeping err reachable through errors.Is.
//
//	wrapf(MethodWalkLinks, "walk #%d (%d↔%d)", err, i, u, v)
//	→ "WalkLinks: walk #1 (1221↔9999): core: unknown stop: 9999"
func wrapf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
