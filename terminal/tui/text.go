package tui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Text renders text at position, clips at region edge
// Wide runes take two columns and are dropped rather than split at the edge
func (r Region) Text(x, y int, s string, st Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, st)
		}
		col += w
	}
}

// Paragraph renders word-wrapped text from the top-left of the region, returns number of lines rendered
// With trim, leading and trailing whitespace is removed from every line
func (r Region) Paragraph(text string, st Style, trim bool) int {
	if r.Empty() {
		return 0
	}

	lines := WrapText(text, r.W, trim)
	rendered := 0
	for i, line := range lines {
		if i >= r.H {
			break
		}
		r.Text(0, i, line, st)
		rendered++
	}
	return rendered
}

// WrapText wraps text at word boundaries to fit width columns
// Explicit newlines start a new line; words wider than width are broken
// Whitespace at a wrap point is dropped
func WrapText(s string, width int, trim bool) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width, trim)...)
	}
	return lines
}

func wrapLine(s string, width int, trim bool) []string {
	if trim {
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	// atWrap marks a break inside the line; trailing whitespace there is always dropped
	flush := func(atWrap bool) {
		l := line.String()
		if trim || atWrap {
			l = strings.TrimRightFunc(l, unicode.IsSpace)
		}
		lines = append(lines, l)
		line.Reset()
		lineW = 0
	}

	for _, tok := range splitWords(s) {
		tokW := runewidth.StringWidth(tok)

		if isSpace(tok) {
			// Leading whitespace survives only on the first line without trim
			if lineW == 0 && (trim || len(lines) > 0) {
				continue
			}
			if lineW+tokW > width {
				flush(true)
				continue
			}
			line.WriteString(tok)
			lineW += tokW
			continue
		}

		if lineW+tokW <= width {
			line.WriteString(tok)
			lineW += tokW
			continue
		}
		if lineW > 0 {
			flush(true)
		}
		if tokW <= width {
			line.WriteString(tok)
			lineW = tokW
			continue
		}

		// Word wider than the line: hard break
		for _, ch := range tok {
			w := runewidth.RuneWidth(ch)
			if lineW+w > width && lineW > 0 {
				flush(true)
			}
			line.WriteRune(ch)
			lineW += w
		}
	}

	if lineW > 0 || len(lines) == 0 {
		flush(false)
	}
	return lines
}

// splitWords splits s into alternating runs of whitespace and non-whitespace
func splitWords(s string) []string {
	var toks []string
	start := 0
	prevSpace := false
	for i, ch := range s {
		sp := unicode.IsSpace(ch)
		if i > start && sp != prevSpace {
			toks = append(toks, s[start:i])
			start = i
		}
		prevSpace = sp
	}
	if start < len(s) {
		toks = append(toks, s[start:])
	}
	return toks
}

func isSpace(tok string) bool {
	ch, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsSpace(ch)
}
