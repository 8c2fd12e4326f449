package terminal

import (
	"log"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned by Init when stdin or stdout is not a tty
	ErrNotTerminal = errors.New("stdin/stdout is not a terminal")
	// ErrNotActive is returned by Draw when the terminal is not initialized
	ErrNotActive = errors.New("terminal is not active")
	// ErrClosed is returned by ReadEvent once the screen is finalized
	ErrClosed = errors.New("terminal input closed")
)

// Terminal provides the terminal control surface used by the UI loop
type Terminal interface {
	// Init enters the alternate screen and raw mode
	Init() error

	// Restore leaves raw mode and the alternate screen. Safe to call multiple times
	// The tcell backend reports an error only when finalizing the screen panics
	Restore() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Draw rebuilds the frame through fn and shows it
	Draw(fn func(*Frame)) error

	// ReadEvent blocks until the next input event
	ReadEvent() (Event, error)

	// PostEvent injects a synthetic event
	PostEvent(Event) error
}

// screenTerm implements Terminal on top of a tcell.Screen
type screenTerm struct {
	newScreen func() (tcell.Screen, error)
	checkTTY  bool

	mu     sync.Mutex
	screen tcell.Screen
	active bool
	frame  Frame
}

// New creates a Terminal bound to the process tty
func New() Terminal {
	return &screenTerm{
		newScreen: tcell.NewScreen,
		checkTTY:  true,
	}
}

// NewWithScreen creates a Terminal over an existing, uninitialized screen
func NewWithScreen(s tcell.Screen) Terminal {
	return &screenTerm{
		newScreen: func() (tcell.Screen, error) { return s, nil },
	}
}

// Init enters raw mode and sets up terminal
func (t *screenTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return nil
	}

	if t.checkTTY && (!term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd()))) {
		return errors.Wrap(ErrNotTerminal, "failed to initialize terminal")
	}

	s, err := t.newScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}

	// tcell enters the alternate screen and raw mode here
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}

	s.HideCursor()
	s.Clear()

	t.screen = s
	t.active = true
	log.Printf("terminal: initialized")
	return nil
}

// Restore finalizes the screen; tcell's Fini returns nothing, so the only
// reportable failure is a panic inside it, returned as "failed to restore terminal"
func (t *screenTerm) Restore() (err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return nil
	}

	// Fini is the last use of the screen; a panic inside it must not leave active set
	t.active = false
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("failed to restore terminal: %v", r)
		}
	}()

	t.screen.Fini()
	log.Printf("terminal: restored")
	return nil
}

// Size returns current terminal dimensions
func (t *screenTerm) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return 0, 0
	}
	return t.screen.Size()
}

// Draw sizes the frame to the screen, blanks it, lets fn fill it and shows the result
func (t *screenTerm) Draw(fn func(*Frame)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotActive
	}

	w, h := t.screen.Size()
	t.frame.reset(w, h)
	fn(&t.frame)

	for y := 0; y < h; y++ {
		row := t.frame.Cells[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			c := row[x]
			t.screen.SetContent(x, y, c.Rune, nil, c.style())
			// The screen draws a wide rune across two cells; don't overwrite its right half
			if runewidth.RuneWidth(c.Rune) == 2 {
				x++
			}
		}
	}
	t.screen.Show()
	return nil
}

// ReadEvent blocks until the next event with a mapping arrives
func (t *screenTerm) ReadEvent() (Event, error) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return Event{}, ErrClosed
	}
	s := t.screen
	t.mu.Unlock()

	// PollEvent blocks without the lock so Restore can still run
	ev := s.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return Event{}, ErrClosed
	case *tcell.EventError:
		return Event{}, errors.Wrap(ev, "terminal input error")
	case *syntheticEvent:
		return ev.ev, nil
	}

	out, ok := fromTcellEvent(ev)
	if !ok {
		log.Printf("terminal: unmapped event %T", ev)
	}
	return out, nil
}

// PostEvent injects a synthetic event
func (t *screenTerm) PostEvent(ev Event) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return ErrNotActive
	}
	if err := t.screen.PostEvent(newSyntheticEvent(ev)); err != nil {
		return errors.Wrap(err, "failed to post event")
	}
	return nil
}
