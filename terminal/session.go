package terminal

import (
	"fmt"
	"log"
)

// SessionError reports a run failure together with a failed restore
type SessionError struct {
	Run     error
	Restore error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%v (restore also failed: %v)", e.Run, e.Restore)
}

// Unwrap exposes the run error, which has priority
func (e *SessionError) Unwrap() error {
	return e.Run
}

// Session initializes t, runs fn, and restores t on every path out of fn
// If Init fails neither fn nor Restore is called
// The run error wins over a restore error; both are kept in a *SessionError
// A panic in fn is re-raised after the terminal is restored
func Session(t Terminal, fn func(Terminal) error) (err error) {
	if err := t.Init(); err != nil {
		return err
	}

	defer func() {
		r := recover()

		restoreErr := t.Restore()
		switch {
		case restoreErr == nil:
		case err == nil && r == nil:
			err = restoreErr
		default:
			log.Printf("terminal: restore failed after run failure: %v", restoreErr)
			if err != nil {
				err = &SessionError{Run: err, Restore: restoreErr}
			}
		}

		if r != nil {
			panic(r)
		}
	}()

	return fn(t)
}
