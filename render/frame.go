package render

import (
	"fmt"
	"strings"

	"github.com/sheikhrachel/gof/model"
)

const (
	AliveGlyph = '*'
	DeadGlyph  = ' '
)

// Frame lays out a bordered grid followed by a status line holding the
// generation number, padded to the frame width
func Frame(g *model.Grid, generation int) []string {
	var (
		w      = g.GetWidth()
		h      = g.GetHeight()
		border = "+" + strings.Repeat("-", w) + "+"
		lines  = make([]string, 0, h+3)
		row    = make([]byte, w+2)
	)

	lines = append(lines, border)
	row[0], row[w+1] = '|', '|'
	for y := range h {
		for x := range w {
			if g.Get(x, y) {
				row[x+1] = AliveGlyph
			} else {
				row[x+1] = DeadGlyph
			}
		}
		lines = append(lines, string(row))
	}
	lines = append(lines, border)

	status := fmt.Sprintf("Generation %d", generation)
	if pad := w + 2 - len(status); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	return append(lines, status)
}
