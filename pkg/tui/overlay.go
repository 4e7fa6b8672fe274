package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// placeOverlay draws fg over bg with its top-left corner at (x, y). Background
// lines are padded when the overlay reaches past them.
func placeOverlay(x, y int, fg, bg string) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fl := range fgLines {
		row := y + i
		for row >= len(bgLines) {
			bgLines = append(bgLines, "")
		}
		line := bgLines[row]
		w := xansi.StringWidth(line)
		if w < x {
			line += strings.Repeat(" ", x-w)
			w = x
		}

		fw := xansi.StringWidth(fl)
		left := xansi.Cut(line, 0, x)
		right := ""
		if x+fw < w {
			right = xansi.Cut(line, x+fw, w)
		}
		bgLines[row] = left + fl + right
	}

	return strings.Join(bgLines, "\n")
}
