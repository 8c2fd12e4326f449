package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/twopane/terminal"
	"github.com/lixenwraith/twopane/terminal/terminaltest"
)

func TestHandleEvent_NonQuitKeysKeepRunning(t *testing.T) {
	events := []terminal.Event{
		terminal.KeyEvent('a'),
		terminal.KeyEvent('Q'),
		terminal.KeyEvent(' '),
		{Type: terminal.EventKey, Kind: terminal.KeyPress, Key: terminal.KeyEscape},
		{Type: terminal.EventKey, Kind: terminal.KeyPress, Key: terminal.KeyEnter},
		{Type: terminal.EventKey, Kind: terminal.KeyPress, Key: terminal.KeyCtrlC, Modifiers: terminal.ModCtrl},
		{Type: terminal.EventKey, Kind: terminal.KeyPress, Key: terminal.KeyUp},
	}

	a := New()
	for _, ev := range events {
		if err := a.HandleEvent(ev); err != nil {
			t.Fatalf("HandleEvent(%v): %v", ev, err)
		}
		if a.Exited() {
			t.Fatalf("HandleEvent(%v) set exit", ev)
		}
	}
}

func TestHandleEvent_QuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
	}{
		{"plain", terminal.KeyEvent('q')},
		{"with alt", terminal.Event{Type: terminal.EventKey, Kind: terminal.KeyPress, Key: terminal.KeyRune, Rune: 'q', Modifiers: terminal.ModAlt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			if err := a.HandleEvent(tt.ev); err != nil {
				t.Fatalf("HandleEvent: %v", err)
			}
			if !a.Exited() {
				t.Error("exit not set")
			}
		})
	}
}

func TestHandleEvent_IgnoresNonPress(t *testing.T) {
	events := []terminal.Event{
		{Type: terminal.EventKey, Kind: terminal.KeyRelease, Key: terminal.KeyRune, Rune: 'q'},
		{Type: terminal.EventKey, Kind: terminal.KeyRepeat, Key: terminal.KeyRune, Rune: 'q'},
		{Type: terminal.EventResize, Width: 100, Height: 40},
		{Type: terminal.EventMouse},
		{Type: terminal.EventPaste, Rune: 'q'},
		{Type: terminal.EventFocus},
		{Type: terminal.EventUnknown, Key: terminal.KeyRune, Rune: 'q'},
	}

	for _, ev := range events {
		a := New()
		if err := a.HandleEvent(ev); err != nil {
			t.Errorf("HandleEvent(%v): %v", ev, err)
		}
		if a.Exited() {
			t.Errorf("HandleEvent(%v) changed state", ev)
		}
	}
}

func TestRun_QuitExitsWithinOneIteration(t *testing.T) {
	fake := terminaltest.NewFake(terminal.KeyEvent('q'))
	if err := fake.Init(); err != nil {
		t.Fatal(err)
	}

	a := New()
	if err := a.Run(fake); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !a.Exited() {
		t.Error("app did not exit")
	}
	if got := fake.Reads(); got != 1 {
		t.Errorf("reads = %d, want 1", got)
	}
	if got := len(fake.Frames()); got != 1 {
		t.Errorf("frames = %d, want 1", got)
	}
}

func TestRun_KeyThenQuit(t *testing.T) {
	fake := terminaltest.NewFake(terminal.KeyEvent('a'), terminal.KeyEvent('q'))
	a := New()

	// Before the second read the 'a' press has been dispatched and the loop is still running
	var exitedBeforeSecondRead bool
	fake.OnRead(func(read int) {
		if read == 2 {
			exitedBeforeSecondRead = a.Exited()
		}
	})

	err := terminal.Session(fake, a.Run)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if exitedBeforeSecondRead {
		t.Error("app exited after 'a'")
	}
	if !a.Exited() {
		t.Error("app did not exit after 'q'")
	}
	if got := len(fake.Frames()); got != 2 {
		t.Errorf("frames = %d, want 2", got)
	}
	if fake.Inits() != 1 || fake.Restores() != 1 {
		t.Errorf("inits=%d restores=%d, want 1/1", fake.Inits(), fake.Restores())
	}
}

func TestRun_ReadFailure(t *testing.T) {
	readErr := errors.New("input stream broken")
	fake := terminaltest.NewFake(terminal.KeyEvent('a'))
	fake.Push(terminaltest.Step{Err: readErr})

	a := New()
	err := terminal.Session(fake, a.Run)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "failed to handle event") {
		t.Errorf("error = %q, want 'failed to handle event' prefix", err)
	}
	if !errors.Is(err, readErr) {
		t.Errorf("error %v does not wrap the read error", err)
	}
	if got := fake.Restores(); got != 1 {
		t.Errorf("restores = %d, want 1", got)
	}
	if fake.Active() {
		t.Error("terminal left active")
	}
	if a.Exited() {
		t.Error("read failure must not set exit")
	}
}

func TestRun_ClosedInput(t *testing.T) {
	fake := terminaltest.NewFake()
	err := terminal.Session(fake, New().Run)

	if !errors.Is(err, terminal.ErrClosed) {
		t.Fatalf("error = %v, want ErrClosed", err)
	}
	if want := "failed to handle event: terminal input closed"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestRun_DrawFailure(t *testing.T) {
	drawErr := errors.New("write: broken pipe")
	fake := terminaltest.NewFake(terminal.KeyEvent('q'))
	fake.DrawErr = drawErr

	err := terminal.Session(fake, New().Run)
	if !errors.Is(err, drawErr) {
		t.Fatalf("error = %v, want draw error", err)
	}
	if !strings.HasPrefix(err.Error(), "failed to draw frame") {
		t.Errorf("error = %q, want 'failed to draw frame' prefix", err)
	}
	if got := fake.Reads(); got != 0 {
		t.Errorf("reads = %d, want 0", got)
	}
	if got := fake.Restores(); got != 1 {
		t.Errorf("restores = %d, want 1", got)
	}
}

func TestRun_RestoreFailureKeepsLoopError(t *testing.T) {
	restoreErr := errors.New("tcsetattr failed")
	fake := terminaltest.NewFake()
	fake.RestoreErr = restoreErr

	err := terminal.Session(fake, New().Run)

	var sessErr *terminal.SessionError
	if !errors.As(err, &sessErr) {
		t.Fatalf("error = %T %v, want *SessionError", err, err)
	}
	if !errors.Is(err, terminal.ErrClosed) {
		t.Errorf("loop error not primary: %v", err)
	}
	if sessErr.Restore != restoreErr {
		t.Errorf("restore error = %v", sessErr.Restore)
	}
}
