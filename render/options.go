package render

import "github.com/katalvlaran/busroute/core"

// Option configures a Printer.
type Option func(*Printer)

// WithColor toggles lipgloss styling of headers and link labels.
func WithColor(on bool) Option {
	return func(p *Printer) {
		p.color = on
	}
}

// WithAlternatives makes bus steps list the other shared lines of the hop,
// looked up in n. A nil network disables the annotation.
func WithAlternatives(n *core.Network) Option {
	return func(p *Printer) {
		p.network = n
	}
}

// WithIndent sets the prefix written before every step line inside a
// route block. Default is two spaces.
func WithIndent(indent string) Option {
	return func(p *Printer) {
		p.indent = indent
	}
}
