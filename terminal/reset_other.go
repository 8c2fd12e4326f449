//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"io"
	"os"
)

var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset attempts to restore terminal to sane state
// Only escape sequences are available on this platform
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
