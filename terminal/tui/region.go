package tui

import "github.com/lixenwraith/twopane/terminal"

// Style bundles foreground, background, and attributes for text rendering
// The zero Style uses terminal default colors
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}

// Region represents a rectangular area within a frame
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying frame
	X, Y   int // Absolute position in frame
	W, H   int // Region dimensions, never negative when built through Sub
}

// FrameRegion returns a region covering the whole frame
func FrameRegion(f *terminal.Frame) Region {
	return Region{
		Cells:  f.Cells,
		TotalW: f.Width,
		W:      f.Width,
		H:      f.Height,
	}
}

// Sub returns a nested region with coordinates relative to the parent
// The result is the intersection with the parent: a negative origin shrinks the size,
// an origin past the edge is pinned to it, and a size that would be negative becomes zero
// Layout helpers rely on this to hand out empty regions instead of invalid ones
func (r Region) Sub(x, y, w, h int) Region {
	x0, y0 := clamp(x, 0, r.W), clamp(y, 0, r.H)
	x1, y1 := clamp(x+w, x0, r.W), clamp(y+h, y0, r.H)

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x0,
		Y:      r.Y + y0,
		W:      x1 - x0,
		H:      y1 - y0,
	}
}

// Inset returns a region shrunk by n cells on all sides, empty when nothing is left
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether the region has no drawable cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell sets a single cell; writes outside the region are dropped
func (r Region) Cell(x, y int, ch rune, st Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if idx < 0 || idx >= len(r.Cells) {
		return
	}
	r.Cells[idx] = terminal.Cell{Rune: ch, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
