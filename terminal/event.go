package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventUnknown EventType = iota
	EventKey
	EventResize
	EventMouse
	EventPaste
	EventFocus
)

var eventTypeNames = [...]string{
	EventUnknown: "unknown",
	EventKey:     "key",
	EventResize:  "resize",
	EventMouse:   "mouse",
	EventPaste:   "paste",
	EventFocus:   "focus",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// KeyKind separates presses from repeats and releases
// tcell reports presses only; the other kinds come from PostEvent
type KeyKind uint8

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	}
	return "unknown"
}

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Kind      KeyKind // For EventKey
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize
}

// KeyEvent builds a key press event for a printable character
func KeyEvent(r rune) Event {
	return Event{Type: EventKey, Kind: KeyPress, Key: KeyRune, Rune: r}
}

// String formats events for logs and error context
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Key == KeyRune {
			return fmt.Sprintf("key %s %s%q", e.Kind, e.Modifiers, e.Rune)
		}
		return fmt.Sprintf("key %s %s%s", e.Kind, e.Modifiers, e.Key)
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	return e.Type.String()
}

// fromTcellEvent converts a tcell event; ok is false for events with no mapping
func fromTcellEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		out := Event{
			Type:      EventKey,
			Kind:      KeyPress,
			Modifiers: fromTcellMod(ev.Modifiers()),
		}
		if ev.Key() == tcell.KeyRune {
			out.Key = KeyRune
			out.Rune = ev.Rune()
			return out, true
		}
		out.Key = fromTcellKey[ev.Key()]
		return out, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventMouse:
		return Event{Type: EventMouse, Modifiers: fromTcellMod(ev.Modifiers())}, true
	case *tcell.EventPaste:
		return Event{Type: EventPaste}, true
	case *tcell.EventFocus:
		return Event{Type: EventFocus}, true
	}
	return Event{Type: EventUnknown}, false
}

// syntheticEvent carries a posted Event through the tcell queue unchanged
type syntheticEvent struct {
	tcell.EventTime
	ev Event
}

func newSyntheticEvent(ev Event) *syntheticEvent {
	s := &syntheticEvent{ev: ev}
	s.SetEventNow()
	return s
}
