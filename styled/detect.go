package styled

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// DetectMode picks the render mode for output written to f. It returns Plain
// when f is not a terminal, when NO_COLOR is set (https://no-color.org), when
// TERM is "dumb", or when the terminal's color profile reports no color
// support; otherwise ANSI.
func DetectMode(f *os.File) Mode {
	if f == nil {
		return Plain
	}
	if os.Getenv("NO_COLOR") != "" {
		return Plain
	}
	if os.Getenv("TERM") == "dumb" {
		return Plain
	}
	if !isatty.IsTerminal(f.Fd()) {
		return Plain
	}
	if termenv.NewOutput(f).ColorProfile() == termenv.Ascii {
		return Plain
	}
	return ANSI
}
