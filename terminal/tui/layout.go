package tui

// SplitVFixed splits with fixed top height, rest to bottom
// topH is clamped to [0, r.H]
func SplitVFixed(r Region, topH int) (top, bottom Region) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = r.Sub(0, 0, r.W, topH)
	bottom = r.Sub(0, topH, r.W, r.H-topH)
	return
}

// SplitVBottom splits with fixed bottom height anchored to the last row, rest to top
// When r.H < bottomH the bottom takes every row and top is empty
func SplitVBottom(r Region, bottomH int) (top, bottom Region) {
	if bottomH < 0 {
		bottomH = 0
	}
	return SplitVFixed(r, r.H-bottomH)
}
