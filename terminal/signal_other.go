//go:build !unix

package terminal

import "os"

var restoreSignals = []os.Signal{os.Interrupt}

// ExitCode returns the exit status used after an interrupt
func ExitCode(os.Signal) int {
	return 130
}
