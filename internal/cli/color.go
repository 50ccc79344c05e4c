package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type fder interface {
	Fd() uintptr
}

// useColor resolves a --color mode against the output writer. In auto mode
// colour is used only on a terminal and only when NO_COLOR is unset.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
