package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorTeal  = lipgloss.Color("#2CD7C7")
	colorAmber = lipgloss.Color("#F4D03F")
	colorSlate = lipgloss.Color("#5F7D87")
	colorRed   = lipgloss.Color("#E74C3C")
)

// palette holds the styles a Printer applies when colour is on.
type palette struct {
	header lipgloss.Style
	index  lipgloss.Style
	bus    lipgloss.Style
	walk   lipgloss.Style
	muted  lipgloss.Style
	none   lipgloss.Style
}

func newPalette() palette {
	// The renderer never writes; it only fixes the colour profile.
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	return palette{
		header: r.NewStyle().Bold(true).Foreground(colorTeal),
		index:  r.NewStyle().Bold(true),
		bus:    r.NewStyle().Foreground(colorTeal),
		walk:   r.NewStyle().Foreground(colorAmber),
		muted:  r.NewStyle().Foreground(colorSlate),
		none:   r.NewStyle().Foreground(colorRed),
	}
}
