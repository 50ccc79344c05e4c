package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thoas/go-funk"

	"github.com/katalvlaran/busroute/core"
)

// Printer renders steps and routes as text. The zero value is not usable;
// build one with New.
type Printer struct {
	color   bool
	indent  string
	network *core.Network
	styles  palette
}

// New returns a Printer with colour off, no alternatives and a two-space
// step indent, then applies opts.
func New(opts ...Option) *Printer {
	p := &Printer{indent: "  "}
	for _, opt := range opts {
		opt(p)
	}
	if p.color {
		p.styles = newPalette()
	}

	return p
}

func (p *Printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

// Step renders one step without route context, so no alternatives are shown.
func (p *Printer) Step(s core.Step) string {
	return p.step(0, false, s)
}

func (p *Printer) step(prev core.StopID, hasPrev bool, s core.Step) string {
	switch s.Via.Mode() {
	case core.ModeStart:
		return fmt.Sprintf("Start at stop %d", s.Stop)
	case core.ModeWalk:
		return fmt.Sprintf("%s to stop %d", p.paint(p.styles.walk, "Walk"), s.Stop)
	case core.ModeBus:
		line, _ := s.Via.Line()
		text := fmt.Sprintf("Take %s to stop %d", p.paint(p.styles.bus, fmt.Sprintf("bus line %d", line)), s.Stop)
		if hasPrev {
			if alt := p.alternatives(prev, s.Stop, line); alt != "" {
				text += " " + p.paint(p.styles.muted, alt)
			}
		}

		return text
	default:
		return fmt.Sprintf("Reach stop %d via %s", s.Stop, s.Via)
	}
}

// alternatives lists the shared lines of a→b other than the labelled one.
func (p *Printer) alternatives(a, b core.StopID, line core.Line) string {
	if p.network == nil {
		return ""
	}
	others := funk.Filter(p.network.SharedLines(a, b), func(l core.Line) bool {
		return l != line
	}).([]core.Line)
	if len(others) == 0 {
		return ""
	}
	names := funk.Map(others, func(l core.Line) string {
		return fmt.Sprint(l)
	}).([]string)

	return "(also: " + strings.Join(names, ", ") + ")"
}

// Route renders every step of r on its own indented line.
func (p *Printer) Route(r core.Route) string {
	var b strings.Builder
	for i, s := range r {
		var prev core.StopID
		if i > 0 {
			prev = r[i-1].Stop
		}
		b.WriteString(p.indent)
		b.WriteString(p.step(prev, i > 0, s))
		b.WriteByte('\n')
	}

	return b.String()
}

// NoRoute renders the single line printed when from cannot reach to.
func (p *Printer) NoRoute(from, to core.StopID) string {
	return p.paint(p.styles.none, fmt.Sprintf("No route found from %d to %d", from, to)) + "\n"
}

// AllRoutes renders a numbered list of routes, or the no-route line when
// routes is empty.
func (p *Printer) AllRoutes(from, to core.StopID, routes []core.Route) string {
	if len(routes) == 0 {
		return p.NoRoute(from, to)
	}
	var b strings.Builder
	b.WriteString(p.paint(p.styles.header, fmt.Sprintf("All routes from %d to %d:", from, to)))
	b.WriteByte('\n')
	for i, r := range routes {
		b.WriteString(p.paint(p.styles.index, fmt.Sprintf("Route %d:", i+1)))
		b.WriteByte('\n')
		b.WriteString(p.Route(r))
	}

	return b.String()
}

// Shortest renders the outcome of a shortest-route search; ok false
// renders the no-route line.
func (p *Printer) Shortest(from, to core.StopID, r core.Route, ok bool) string {
	if !ok {
		return p.NoRoute(from, to)
	}
	var b strings.Builder
	b.WriteString(p.paint(p.styles.header, fmt.Sprintf("Shortest route from %d to %d (%d hops):", from, to, r.Hops())))
	b.WriteByte('\n')
	b.WriteString(p.Route(r))

	return b.String()
}

// Fprint writes text to w, returning the first write error.
func Fprint(w io.Writer, text string) error {
	_, err := io.WriteString(w, text)

	return err
}
