package plot

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// brailleBase is U+2800, the empty braille pattern.
const brailleBase = 0x2800

// Each cell holds a 2x4 dot grid; brailleBits[x][y] is the dot's bit.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// cell is one terminal cell of a Grid.
type cell struct {
	dots  uint8
	r     rune
	color color.Color
}

// Grid is a cell buffer with braille sub-cell plotting. Dots are addressed in
// pixel space (2 per cell horizontally, 4 vertically); glyphs placed with
// SetRune overwrite the dots of their cell.
type Grid struct {
	w, h  int
	cells []cell
	ascii bool
}

// NewGrid returns a w x h cell grid. With ascii set, dots render as '*'
// instead of braille patterns.
func NewGrid(w, h int, ascii bool) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cells: make([]cell, w*h), ascii: ascii}
}

// Size returns the grid size in cells.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// PixelSize returns the grid size in dots.
func (g *Grid) PixelSize() (int, int) { return g.w * 2, g.h * 4 }

func (g *Grid) at(cx, cy int) *cell {
	if cx < 0 || cy < 0 || cx >= g.w || cy >= g.h {
		return nil
	}
	return &g.cells[cy*g.w+cx]
}

// SetDot lights the dot at pixel (px, py).
func (g *Grid) SetDot(px, py int, c color.Color) {
	if px < 0 || py < 0 {
		return
	}
	cl := g.at(px/2, py/4)
	if cl == nil || cl.r != 0 {
		return
	}
	cl.dots |= brailleBits[px%2][py%4]
	cl.color = c
}

// Line draws a line between two pixels using Bresenham's algorithm.
func (g *Grid) Line(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.SetDot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// SetRune places a glyph in a cell, replacing any dots.
func (g *Grid) SetRune(cx, cy int, r rune, c color.Color) {
	if cl := g.at(cx, cy); cl != nil {
		cl.r = r
		cl.dots = 0
		cl.color = c
	}
}

// SetString writes s left to right starting at (cx, cy), clipped to the grid.
func (g *Grid) SetString(cx, cy int, s string, c color.Color) {
	for _, r := range s {
		g.SetRune(cx, cy, r, c)
		cx++
	}
}

// Empty reports whether a cell has neither dots nor a glyph.
func (g *Grid) Empty(cx, cy int) bool {
	cl := g.at(cx, cy)
	return cl != nil && cl.dots == 0 && cl.r == 0
}

func (cl cell) glyph(ascii bool) rune {
	switch {
	case cl.r != 0:
		return cl.r
	case cl.dots == 0:
		return ' '
	case ascii:
		return '*'
	default:
		return rune(brailleBase + int(cl.dots))
	}
}

// Lines renders the grid, one string per row. Runs of cells sharing a color
// are styled together.
func (g *Grid) Lines() []string {
	out := make([]string, g.h)
	var sb, run strings.Builder
	for y := 0; y < g.h; y++ {
		sb.Reset()
		run.Reset()
		var runColor color.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == nil {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			cl := g.cells[y*g.w+x]
			c := cl.color
			if cl.dots == 0 && cl.r == 0 {
				c = nil
			}
			if !sameColor(c, runColor) {
				flush()
				runColor = c
			}
			run.WriteRune(cl.glyph(g.ascii))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
