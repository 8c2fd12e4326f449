package terminal

import "github.com/gdamore/tcell/v2"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// RGB represents a 24-bit color, the zero value selects the terminal default
type RGB struct {
	R, G, B uint8
}

// IsDefault reports whether c is the terminal default color
func (c RGB) IsDefault() bool {
	return c == RGB{}
}

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// blankCell is what every cell holds at the start of a frame
var blankCell = Cell{Rune: ' '}

// Frame is the drawing surface for one render pass
// Cells are row-major: Cells[y*Width + x]
type Frame struct {
	Cells  []Cell
	Width  int
	Height int
}

// reset sizes the frame to w×h and blanks every cell, reusing the backing slice
func (f *Frame) reset(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	if cap(f.Cells) < n {
		f.Cells = make([]Cell, n)
	}
	f.Cells = f.Cells[:n]
	for i := range f.Cells {
		f.Cells[i] = blankCell
	}
	f.Width = w
	f.Height = h
}

// style converts cell colors and attributes to a tcell style
func (c Cell) style() tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsDefault() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsDefault() {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
