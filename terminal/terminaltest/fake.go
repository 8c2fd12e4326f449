// Package terminaltest provides a scripted Terminal for loop and lifecycle tests.
package terminaltest

import (
	"sync"

	"github.com/lixenwraith/twopane/terminal"
)

var _ terminal.Terminal = (*Fake)(nil)

// Step is one scripted ReadEvent result
type Step struct {
	Event terminal.Event
	Err   error
}

// Fake is a Terminal that replays scripted events into fixed-size frames
// Once the script is exhausted ReadEvent returns terminal.ErrClosed
type Fake struct {
	Width, Height int

	InitErr    error
	RestoreErr error
	DrawErr    error

	mu       sync.Mutex
	script   []Step
	active   bool
	inits    int
	restores int
	frames   []terminal.Frame
	onRead   func(read int)
	reads    int
}

// NewFake returns an 80×24 fake terminal scripted with events
func NewFake(events ...terminal.Event) *Fake {
	f := &Fake{Width: 80, Height: 24}
	for _, ev := range events {
		f.script = append(f.script, Step{Event: ev})
	}
	return f
}

// Push appends scripted steps
func (f *Fake) Push(steps ...Step) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.script = append(f.script, steps...)
}

// OnRead registers a hook called before each ReadEvent with the 1-based read count
func (f *Fake) OnRead(fn func(read int)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onRead = fn
}

func (f *Fake) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inits++
	if f.InitErr != nil {
		return f.InitErr
	}
	f.active = true
	return nil
}

func (f *Fake) Restore() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.restores++
	f.active = false
	return f.RestoreErr
}

func (f *Fake) Size() (int, int) {
	return f.Width, f.Height
}

func (f *Fake) Draw(fn func(*terminal.Frame)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DrawErr != nil {
		return f.DrawErr
	}
	if !f.active {
		return terminal.ErrNotActive
	}

	frame := terminal.Frame{
		Cells:  make([]terminal.Cell, f.Width*f.Height),
		Width:  f.Width,
		Height: f.Height,
	}
	for i := range frame.Cells {
		frame.Cells[i] = terminal.Cell{Rune: ' '}
	}
	fn(&frame)
	f.frames = append(f.frames, frame)
	return nil
}

func (f *Fake) ReadEvent() (terminal.Event, error) {
	f.mu.Lock()
	f.reads++
	hook, n := f.onRead, f.reads
	f.mu.Unlock()

	if hook != nil {
		hook(n)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.script) == 0 {
		return terminal.Event{}, terminal.ErrClosed
	}
	step := f.script[0]
	f.script = f.script[1:]
	return step.Event, step.Err
}

func (f *Fake) PostEvent(ev terminal.Event) error {
	f.Push(Step{Event: ev})
	return nil
}

// Inits returns how many times Init was called
func (f *Fake) Inits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits
}

// Restores returns how many times Restore was called
func (f *Fake) Restores() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.restores
}

// Active reports whether the fake is between Init and Restore
func (f *Fake) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Frames returns every frame drawn so far
func (f *Fake) Frames() []terminal.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]terminal.Frame(nil), f.frames...)
}

// Reads returns how many times ReadEvent was called
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

// Row returns row y of frame as a string
func Row(frame terminal.Frame, y int) string {
	if y < 0 || y >= frame.Height {
		return ""
	}
	runes := make([]rune, frame.Width)
	for x := 0; x < frame.Width; x++ {
		runes[x] = frame.Cells[y*frame.Width+x].Rune
	}
	return string(runes)
}
