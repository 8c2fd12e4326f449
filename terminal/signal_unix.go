//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// restoreSignals terminate the process while raw mode may be active
var restoreSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}

// ExitCode returns the conventional 128+signo exit status for sig
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(unix.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
