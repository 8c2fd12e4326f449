package app

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lixenwraith/twopane/terminal"
	"github.com/lixenwraith/twopane/terminal/terminaltest"
	"github.com/lixenwraith/twopane/terminal/tui"
)

func renderFrame(w, h int) terminal.Frame {
	f := terminal.Frame{Cells: make([]terminal.Cell, w*h), Width: w, Height: h}
	for i := range f.Cells {
		f.Cells[i].Rune = ' '
	}
	Render(tui.FrameRegion(&f), New())
	return f
}

func frameRows(f terminal.Frame) []string {
	out := make([]string, f.Height)
	for y := range out {
		out[y] = terminaltest.Row(f, y)
	}
	return out
}

func TestRender_Layout(t *testing.T) {
	want := []string{
		"╭──────────╮",
		"│demo      │",
		"╰──────────╯",
		"╭status────╮",
		"│          │",
		"╰──────────╯",
	}
	if got := frameRows(renderFrame(12, 6)); !reflect.DeepEqual(got, want) {
		t.Errorf("rows =\n%s\nwant\n%s", join(got), join(want))
	}
}

func TestRender_StatusAnchoredToBottom(t *testing.T) {
	for h := 3; h <= 12; h++ {
		rows := frameRows(renderFrame(10, h))

		if rows[h-3] != "╭status──╮" || rows[h-1] != "╰────────╯" {
			t.Errorf("H=%d: status bar not in last 3 rows:\n%s", h, join(rows))
		}

		contentH := h - 3
		switch {
		case contentH == 0:
		case contentH == 1:
			// A single row is too small for a border
			if rows[0] != "          " {
				t.Errorf("H=%d: content row = %q, want blank", h, rows[0])
			}
		default:
			if rows[0] != "╭────────╮" || rows[contentH-1] != "╰────────╯" {
				t.Errorf("H=%d: content box does not span %d rows:\n%s", h, contentH, join(rows))
			}
		}
	}
}

func TestRender_ShortFrames(t *testing.T) {
	tests := []struct {
		h    int
		want []string
	}{
		{0, []string{}},
		{1, []string{"          "}},
		{2, []string{"╭status──╮", "╰────────╯"}},
	}
	for _, tt := range tests {
		got := frameRows(renderFrame(10, tt.h))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("H=%d: rows =\n%s\nwant\n%s", tt.h, join(got), join(tt.want))
		}
	}
}

func TestRender_NarrowFrameClipsTitle(t *testing.T) {
	want := []string{
		"╭──╮",
		"│de│",
		"╰──╯",
		"╭st╮",
		"│  │",
		"╰──╯",
	}
	if got := frameRows(renderFrame(4, 6)); !reflect.DeepEqual(got, want) {
		t.Errorf("rows =\n%s\nwant\n%s", join(got), join(want))
	}
}

func TestRender_Idempotent(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {12, 6}, {3, 2}, {1, 1}} {
		first := renderFrame(size[0], size[1])
		second := renderFrame(size[0], size[1])
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%dx%d: render output differs between passes", size[0], size[1])
		}
	}
}

func TestRender_RepeatedPassIntoSameFrame(t *testing.T) {
	clean := renderFrame(12, 6)

	dirty := terminal.Frame{Cells: make([]terminal.Cell, 12*6), Width: 12, Height: 6}
	for i := range dirty.Cells {
		dirty.Cells[i].Rune = ' '
	}
	Render(tui.FrameRegion(&dirty), New())
	Render(tui.FrameRegion(&dirty), New())

	if !reflect.DeepEqual(clean, dirty) {
		t.Error("rendering twice into one frame differs from a single pass")
	}
}

func join(rows []string) string {
	return strings.Join(rows, "\n")
}
