// Package render turns routes produced by the bfs and dfs packages into
// human-readable text.
//
// Lines:
//
//	Start at stop 1221
//	Walk to stop 1222
//	Take bus line 4 to stop 1224
//
// A Printer renders single steps, whole routes, numbered route lists and
// the "No route found" line. Styling is off by default; WithColor(true)
// enables lipgloss styles with a fixed 256-colour profile so output does
// not depend on the terminal it is written to. WithAlternatives(n) appends
// the other lines that also serve a bus hop, e.g. "(also: 8)".
//
// Compact renders a route on one line for logs:
//
//	1221 -walk-> 1222 -4-> 1224 -walk-> 1225
package render
