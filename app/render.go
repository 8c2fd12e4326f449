package app

import "github.com/lixenwraith/twopane/terminal/tui"

const (
	statusHeight = 3
	statusTitle  = "status"
	contentText  = "demo"
)

// Render draws the content panel above a fixed-height status bar
// Frame heights below statusHeight give every row to the status bar
func Render(frame tui.Region, _ *App) {
	content, status := tui.SplitVBottom(frame, statusHeight)

	body := content.Block("")
	body.Paragraph(contentText, tui.Style{}, true)

	status.Block(statusTitle)
}
