// Package tui provides immediate-mode drawing primitives over a terminal.Frame.
//
// Core abstraction is Region, representing a rectangular area within a frame.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, the caller redraws every frame
//   - Region is a small value type; layout helpers split it into sub-regions
//   - Sizes never go negative: splits clamp to the space that exists
//
// Usage pattern:
//
//	term.Draw(func(f *terminal.Frame) {
//	    root := tui.FrameRegion(f)
//	    body, bar := tui.SplitVBottom(root, 3)
//	    inner := body.Block("")
//	    inner.Paragraph("hello", tui.Style{}, true)
//	    bar.Block("status")
//	})
package tui
