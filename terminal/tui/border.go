package tui

// Rounded box drawing characters
const (
	roundTL = '╭'
	roundTR = '╮'
	roundBL = '╰'
	roundBR = '╯'
	lineH   = '─'
	lineV   = '│'
)

// Box draws a rounded border around the region edge
// Regions smaller than 2×2 are left untouched
func (r Region) Box(st Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	r.Cell(0, 0, roundTL, st)
	r.Cell(r.W-1, 0, roundTR, st)
	r.Cell(0, r.H-1, roundBL, st)
	r.Cell(r.W-1, r.H-1, roundBR, st)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, lineH, st)
		r.Cell(x, r.H-1, lineH, st)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, lineV, st)
		r.Cell(r.W-1, y, lineV, st)
	}
}

// Block draws a rounded box with an optional title on the top edge and returns the content region
// The title starts right after the top-left corner and is clipped before the top-right corner
func (r Region) Block(title string) Region {
	r.Box(Style{})

	if title != "" && r.W > 2 && r.H >= 2 {
		r.Sub(1, 0, r.W-2, 1).Text(0, 0, title, Style{})
	}

	return r.Inset(1)
}
