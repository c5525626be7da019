package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termfolio/render"
)

// wrap breaks text into lines no wider than width display columns, splitting on spaces
// Words wider than a line are broken at rune boundaries
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		lineW := 0
		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}

		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)

			if lineW > 0 && lineW+1+ww > width {
				flush()
			}
			if lineW > 0 {
				line.WriteByte(' ')
				lineW++
			}
			if ww <= width-lineW {
				line.WriteString(word)
				lineW += ww
				continue
			}

			// Oversized word
			for _, r := range word {
				rw := runewidth.RuneWidth(r)
				if lineW+rw > width && lineW > 0 {
					flush()
				}
				line.WriteRune(r)
				lineW += rw
			}
		}
		flush()
	}
	return lines
}

// hardWrap splits text every width columns keeping all spaces, the way a terminal wraps output
func hardWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	w := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if w+rw > width && w > 0 {
			lines = append(lines, line.String())
			line.Reset()
			w = 0
		}
		line.WriteRune(r)
		w += rw
	}
	return append(lines, line.String())
}

// tailFit returns the longest suffix of s at most width columns wide
func tailFit(s []rune, width int) []rune {
	w := 0
	for i := len(s) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(s[i])
		if w+rw > width {
			return s[i+1:]
		}
		w += rw
	}
	return s
}

// drawText writes text at (x, y) clipped to width columns, padding the rest with spaces
// Returns the number of columns used by text
func drawText(w render.CellWriter, x, y, width int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > width {
			break
		}
		// A wide rune covers its right neighbour, tcell draws it across both cells
		w.SetContent(x+col, y, r, nil, style)
		col += rw
	}
	used := col
	for ; col < width; col++ {
		w.SetContent(x+col, y, ' ', nil, style)
	}
	return used
}
