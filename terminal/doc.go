// Package terminal owns the process terminal for the lifetime of a UI session.
//
// Features:
//   - Alternate screen and raw mode via tcell, paired Init/Restore
//   - Cell-buffer frames rebuilt from scratch on every Draw
//   - Blocking single-event reads translated into a small Event model
//   - Scoped sessions that restore the terminal on every exit path
//   - Signal-triggered and emergency restoration for crash paths
//
// A Terminal is not safe for concurrent drawing; only Restore may be called
// from another goroutine.
package terminal
