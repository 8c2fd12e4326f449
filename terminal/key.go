package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, H/I/M arrive as Backspace/Tab/Enter
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyCtrlSpace
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
	ModMeta  Modifier = 1 << 3
)

// fromTcellKey maps tcell key codes onto Key
// tcell aliases (KeyCtrlH=KeyBackspace, KeyCtrlI=KeyTab, KeyCtrlM=KeyEnter, KeyCtrlLeftSq=KeyEscape) appear once
var fromTcellKey = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,

	tcell.KeyCtrlA:     KeyCtrlA,
	tcell.KeyCtrlB:     KeyCtrlB,
	tcell.KeyCtrlC:     KeyCtrlC,
	tcell.KeyCtrlD:     KeyCtrlD,
	tcell.KeyCtrlE:     KeyCtrlE,
	tcell.KeyCtrlF:     KeyCtrlF,
	tcell.KeyCtrlG:     KeyCtrlG,
	tcell.KeyCtrlJ:     KeyCtrlJ,
	tcell.KeyCtrlK:     KeyCtrlK,
	tcell.KeyCtrlL:     KeyCtrlL,
	tcell.KeyCtrlN:     KeyCtrlN,
	tcell.KeyCtrlO:     KeyCtrlO,
	tcell.KeyCtrlP:     KeyCtrlP,
	tcell.KeyCtrlQ:     KeyCtrlQ,
	tcell.KeyCtrlR:     KeyCtrlR,
	tcell.KeyCtrlS:     KeyCtrlS,
	tcell.KeyCtrlT:     KeyCtrlT,
	tcell.KeyCtrlU:     KeyCtrlU,
	tcell.KeyCtrlV:     KeyCtrlV,
	tcell.KeyCtrlW:     KeyCtrlW,
	tcell.KeyCtrlX:     KeyCtrlX,
	tcell.KeyCtrlY:     KeyCtrlY,
	tcell.KeyCtrlZ:     KeyCtrlZ,
	tcell.KeyCtrlSpace: KeyCtrlSpace,
}

// keyToName maps Key constants to canonical string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlA:     "ctrl_a",
	KeyCtrlB:     "ctrl_b",
	KeyCtrlC:     "ctrl_c",
	KeyCtrlD:     "ctrl_d",
	KeyCtrlE:     "ctrl_e",
	KeyCtrlF:     "ctrl_f",
	KeyCtrlG:     "ctrl_g",
	KeyCtrlJ:     "ctrl_j",
	KeyCtrlK:     "ctrl_k",
	KeyCtrlL:     "ctrl_l",
	KeyCtrlN:     "ctrl_n",
	KeyCtrlO:     "ctrl_o",
	KeyCtrlP:     "ctrl_p",
	KeyCtrlQ:     "ctrl_q",
	KeyCtrlR:     "ctrl_r",
	KeyCtrlS:     "ctrl_s",
	KeyCtrlT:     "ctrl_t",
	KeyCtrlU:     "ctrl_u",
	KeyCtrlV:     "ctrl_v",
	KeyCtrlW:     "ctrl_w",
	KeyCtrlX:     "ctrl_x",
	KeyCtrlY:     "ctrl_y",
	KeyCtrlZ:     "ctrl_z",
	KeyCtrlSpace: "ctrl_space",
}

// String returns the canonical key name, "rune" for KeyRune and "none" for unknown keys
func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// String renders modifiers as "ctrl+alt+shift+meta+" prefix order
func (m Modifier) String() string {
	var b strings.Builder
	if m&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if m&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if m&ModShift != 0 {
		b.WriteString("shift+")
	}
	if m&ModMeta != 0 {
		b.WriteString("meta+")
	}
	return b.String()
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}
