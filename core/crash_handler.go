package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/twopane/terminal"
)

var (
	crashMu       sync.Mutex
	crashTerminal terminal.Terminal

	// Overridden in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// InstallHooks registers the terminal HandleCrash restores before printing a report
func InstallHooks(t terminal.Terminal) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	// Terminal cleanup if available
	if t == nil || t.Restore() != nil {
		// Fallback for edge cases
		terminal.EmergencyReset(os.Stdout)
	}

	log.Printf("crash: %v", r)
	fmt.Fprint(crashOut, FormatCrash(r, debug.Stack()))

	crashExit(1)
}
