package plot

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/theme"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
	"github.com/charmbracelet/x/ansi"
)

// yLabelWidth is the left margin of the main axes: tick labels plus the axis line.
const yLabelWidth = 9

// HandleRune marks the resize corner of a rectangle overlay; ASCII mode
// uses HandleRuneASCII.
const (
	HandleRune      = '◢'
	HandleRuneASCII = '#'
)

// glyphs are the line and marker characters of one drawing mode.
type glyphs struct {
	hline, vline      rune
	thickH, thickV    rune
	tl, tr, bl, br    rune
	handle, grid      rune
	legend, ellipsis  string
	axisV, axisCorner string
	axisH             string
}

var (
	unicodeGlyphs = glyphs{
		hline: '─', vline: '│', thickH: '━', thickV: '┃',
		tl: '┌', tr: '┐', bl: '└', br: '┘',
		handle: HandleRune, grid: '·',
		legend: "──", ellipsis: "…",
		axisV: "│", axisCorner: "└", axisH: "─",
	}
	asciiGlyphs = glyphs{
		hline: '-', vline: '|', thickH: '=', thickV: '|',
		tl: '+', tr: '+', bl: '+', br: '+',
		handle: HandleRuneASCII, grid: '.',
		legend: "--", ellipsis: "~",
		axisV: "|", axisCorner: "+", axisH: "-",
	}
)

func glyphSet(ascii bool) glyphs {
	if ascii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// RenderOptions controls figure rendering.
type RenderOptions struct {
	ASCII      bool
	ShowGrid   bool
	ShowLegend bool

	// Border frames insets. The zero value means rounded.
	Border lipgloss.Border
}

// Layers renders the axes and its insets as canvas layers, insets on top.
func (a *Axes) Layers(opts RenderOptions, z int) []*lipgloss.Layer {
	if a.w <= 0 || a.h <= 0 {
		return nil
	}
	var content string
	if a.parent == nil {
		content = a.renderMain(opts)
	} else {
		content = a.renderInset(opts)
	}
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(content).X(a.x).Y(a.y).Z(z).ID(a.id),
	}
	for i, in := range a.insets {
		layers = append(layers, in.Layers(opts, z+1+i)...)
	}
	return layers
}

// drawData plots every series and every overlay into g.
func (a *Axes) drawData(g *Grid, opts RenderOptions) {
	lim, ok := a.Limits()
	if !ok {
		return
	}
	pw, ph := g.PixelSize()
	proj, ok := newProjection(lim, pw, ph)
	if !ok {
		return
	}

	gl := glyphSet(opts.ASCII)
	palette := theme.SeriesPalette()
	for i, s := range a.series {
		c := s.Color
		if c == nil {
			c = palette[i%len(palette)]
		}
		drawSeries(g, proj, s, c)
	}

	if opts.ShowGrid {
		drawGrid(g, gl)
	}
	for _, r := range a.shapes {
		drawRectangle(g, proj, r, gl)
	}
	if opts.ShowLegend {
		a.drawLegend(g, palette, gl)
	}
}

func drawSeries(g *Grid, proj projection, s zoom.Series, c color.Color) {
	n := min(len(s.X), len(s.Y))
	thick := s.LineWidth >= 2
	havePrev := false
	var x0, y0 float64
	for i := 0; i < n; i++ {
		if !finite(s.X[i]) || !finite(s.Y[i]) {
			havePrev = false
			continue
		}
		x1, y1 := proj.pixel(s.X[i], s.Y[i])
		if havePrev {
			if cx0, cy0, cx1, cy1, ok := clipSegment(x0, y0, x1, y1, proj.pw, proj.ph); ok {
				g.Line(int(cx0), int(cy0), int(cx1), int(cy1), c)
				if thick {
					g.Line(int(cx0), int(cy0)+1, int(cx1), int(cy1)+1, c)
				}
			}
		} else if x1 >= 0 && y1 >= 0 && x1 < proj.pw && y1 < proj.ph {
			g.SetDot(int(x1), int(y1), c)
		}
		x0, y0, havePrev = x1, y1, true
	}
}

// clipSegment clips a segment to [0, w) x [0, h) with Liang-Barsky.
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	const inset = 1e-9
	xmin, ymin, xmax, ymax := 0.0, 0.0, w-inset, h-inset
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// drawGrid puts faint dots at the quarter marks, only in empty cells.
func drawGrid(g *Grid, gl glyphs) {
	w, h := g.Size()
	c := theme.GridColor()
	for _, fy := range []float64{0.25, 0.5, 0.75} {
		cy := int(fy * float64(h))
		for cx := 0; cx < w; cx += 2 {
			if g.Empty(cx, cy) {
				g.SetRune(cx, cy, gl.grid, c)
			}
		}
	}
	for _, fx := range []float64{0.25, 0.5, 0.75} {
		cx := int(fx * float64(w))
		for cy := 0; cy < h; cy++ {
			if g.Empty(cx, cy) {
				g.SetRune(cx, cy, gl.grid, c)
			}
		}
	}
}

// drawRectangle outlines r and marks its resize corner.
func drawRectangle(g *Grid, proj projection, r *Rectangle, gl glyphs) {
	w, h := g.Size()
	b := r.bounds.Bounds().Normalized()
	px0, py0 := proj.pixel(b.XMin, b.YMax)
	px1, py1 := proj.pixel(b.XMax, b.YMin)
	left, top := int(math.Floor(px0/2)), int(math.Floor(py0/4))
	right, bottom := int(math.Floor(px1/2)), int(math.Floor(py1/4))
	c := r.edgeColor()

	hline, vline := gl.hline, gl.vline
	if r.style.LineWidth >= 2 {
		hline, vline = gl.thickH, gl.thickV
	}
	for x := max(left, 0); x <= min(right, w-1); x++ {
		g.SetRune(x, top, hline, c)
		g.SetRune(x, bottom, hline, c)
	}
	for y := max(top, 0); y <= min(bottom, h-1); y++ {
		g.SetRune(left, y, vline, c)
		g.SetRune(right, y, vline, c)
	}
	if left != right && top != bottom {
		g.SetRune(left, top, gl.tl, c)
		g.SetRune(right, top, gl.tr, c)
		g.SetRune(left, bottom, gl.bl, c)
		g.SetRune(right, bottom, gl.br, c)
	}

	corner := r.bounds.Corner()
	hx, hy := proj.pixel(corner.X, corner.Y)
	g.SetRune(int(math.Floor(hx/2)), int(math.Floor(hy/4)), gl.handle, c)
}

func (a *Axes) drawLegend(g *Grid, palette []color.Color, gl glyphs) {
	w, _ := g.Size()
	row := 0
	for i, s := range a.series {
		if s.Label == "" {
			continue
		}
		c := s.Color
		if c == nil {
			c = palette[i%len(palette)]
		}
		label := ansi.Truncate(s.Label, max(w-4, 0), gl.ellipsis)
		g.SetString(1, row, gl.legend, c)
		g.SetString(4, row, label, theme.AxisColor())
		row++
	}
}

// renderMain draws the title row, y tick labels, the plot area and the
// x axis with its tick labels.
func (a *Axes) renderMain(opts RenderOptions) string {
	_, _, pw, ph := a.plotArea()
	g := NewGrid(pw, ph, opts.ASCII)
	a.drawData(g, opts)
	rows := g.Lines()
	gl := glyphSet(opts.ASCII)

	axis := lipgloss.NewStyle().Foreground(theme.AxisColor())
	lim, haveLim := a.Limits()
	lim = lim.Normalized()

	var sb strings.Builder
	sb.WriteString(lipgloss.PlaceHorizontal(a.w, lipgloss.Center, axis.Bold(true).Render(ansi.Truncate(a.title, a.w, gl.ellipsis))))
	sb.WriteByte('\n')

	tickRows := map[int]float64{}
	if haveLim && ph > 0 {
		tickRows[0] = lim.YMax
		tickRows[ph/2] = lim.YMax - (float64(ph/2)+0.5)/float64(ph)*lim.Height()
		tickRows[ph-1] = lim.YMin
	}
	for i, row := range rows {
		label := ""
		if v, ok := tickRows[i]; ok {
			label = formatTick(v)
		}
		label = ansi.Truncate(label, yLabelWidth-2, "")
		sb.WriteString(axis.Render(strings.Repeat(" ", yLabelWidth-2-ansi.StringWidth(label)) + label + " " + gl.axisV))
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	sb.WriteString(axis.Render(strings.Repeat(" ", yLabelWidth-1) + gl.axisCorner + strings.Repeat(gl.axisH, pw)))
	sb.WriteByte('\n')
	sb.WriteString(axis.Render(strings.Repeat(" ", yLabelWidth) + xTickRow(lim, haveLim, pw)))
	return sb.String()
}

// xTickRow lays out the x labels at the left edge, centre and right edge.
func xTickRow(lim zoom.Limits, ok bool, width int) string {
	line := []rune(strings.Repeat(" ", width))
	if !ok || width == 0 {
		return string(line)
	}
	place := func(col int, s string) {
		r := []rune(s)
		col = min(max(col, 0), max(width-len(r), 0))
		for i, ch := range r {
			if col+i < width {
				line[col+i] = ch
			}
		}
	}
	lo, mid, hi := formatTick(lim.XMin), formatTick((lim.XMin+lim.XMax)/2), formatTick(lim.XMax)
	place(0, lo)
	place(width/2-len(mid)/2, mid)
	place(width-len(hi), hi)
	return string(line)
}

// renderInset draws a bordered box with the title on its first inner row.
func (a *Axes) renderInset(opts RenderOptions) string {
	_, _, pw, ph := a.plotArea()
	g := NewGrid(pw, ph, opts.ASCII)
	a.drawData(g, RenderOptions{ASCII: opts.ASCII})
	gl := glyphSet(opts.ASCII)

	title := lipgloss.PlaceHorizontal(pw, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.InsetTitle()).Render(ansi.Truncate(a.title, pw, gl.ellipsis)))
	body := append([]string{title}, g.Lines()...)

	border := opts.Border
	if border == (lipgloss.Border{}) {
		border = lipgloss.RoundedBorder()
		if opts.ASCII {
			border = lipgloss.ASCIIBorder()
		}
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(theme.InsetBorder()).
		Render(strings.Join(body, "\n"))
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
