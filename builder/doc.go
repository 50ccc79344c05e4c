// Package builder derives a frozen core.Network from a list of stops (each
// annotated with the bus lines serving it) and a list of explicit walks.
//
// Rules:
//
//   - Two stops are adjacent iff they share at least one line, or a walk
//     connects them. Edges are additive: walks never remove bus adjacency.
//   - A bus edge is labelled with one shared line chosen by the tie-break
//     policy (TieBreakLast by default); every shared line is still
//     available through Network.SharedLines.
//   - A walk labels its edge Walking() in both directions, replacing any bus
//     label for that pair.
//   - A walk that names an undeclared stop fails the build with
//     core.ErrUnknownStop instead of being ignored.
//
// Options:
//
//   - WithStrategy(Pairwise | LineIndex)  pair discovery; same result either way.
//   - WithTieBreak(TieBreakLast | TieBreakFirst)
//   - WithLogger(*slog.Logger)            construction diagnostics.
//
// Usage:
//
//	n, err := builder.Build(stops, walks, builder.WithStrategy(builder.LineIndex))
//	if err != nil {
//		// errors.Is(err, core.ErrUnknownStop), core.ErrDuplicateStop, core.ErrSelfLink
//	}
package builder
