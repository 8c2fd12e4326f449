// Package app holds the application state and the draw/read/dispatch loop.
package app

import (
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/twopane/terminal"
	"github.com/lixenwraith/twopane/terminal/tui"
)

// App is the application state
type App struct {
	exit bool
}

// New returns an App in the running state
func New() *App {
	return &App{}
}

// Exited reports whether the quit key has been handled
func (a *App) Exited() bool {
	return a.exit
}

// Run draws a frame, then blocks for and dispatches one event, until the app exits
// Any draw, read or dispatch error ends the loop
func (a *App) Run(t terminal.Terminal) error {
	for !a.exit {
		if err := t.Draw(func(f *terminal.Frame) {
			Render(tui.FrameRegion(f), a)
		}); err != nil {
			return errors.Wrap(err, "failed to draw frame")
		}

		if err := a.handleEvents(t); err != nil {
			return errors.Wrap(err, "failed to handle event")
		}
	}
	return nil
}

func (a *App) handleEvents(t terminal.Terminal) error {
	ev, err := t.ReadEvent()
	if err != nil {
		return err
	}
	return a.HandleEvent(ev)
}

// HandleEvent dispatches key presses to the key handler and ignores everything else
func (a *App) HandleEvent(ev terminal.Event) error {
	if ev.Type != terminal.EventKey || ev.Kind != terminal.KeyPress {
		log.Printf("app: ignored %v", ev)
		return nil
	}

	if err := a.handleKeyEvent(ev); err != nil {
		return errors.Wrapf(err, "failed to handle key event: %v", ev)
	}
	return nil
}

func (a *App) handleKeyEvent(ev terminal.Event) error {
	log.Printf("app: %v", ev)

	if ev.Key == terminal.KeyRune && ev.Rune == 'q' {
		a.quit()
	}
	return nil
}

func (a *App) quit() {
	a.exit = true
}
