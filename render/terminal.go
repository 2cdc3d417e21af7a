package render

import (
	"os"

	"github.com/Laisky/errors/v2"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultWidth is used for a terminal whose size cannot be read.
const DefaultWidth = 80

// TerminalSize returns the current terminal dimensions of f.
func TerminalSize(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, errors.Wrap(err, "getting terminal size")
	}
	return int(ws.Col), int(ws.Row), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DetectWidth returns the column count of f. Output that is not a terminal
// gets 0, which disables centring and wrapping.
func DetectWidth(f *os.File) int {
	if !IsTerminal(f) {
		return 0
	}
	if w, _, err := TerminalSize(f); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}
