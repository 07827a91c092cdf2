package plot

import (
	"errors"
	"image/color"
	"math"
	"slices"

	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// ErrRemoved is returned when attaching to an axes that was removed.
var ErrRemoved = errors.New("axes has been removed")

// Axes is a rectangular plotting area on a Figure. The main axes fills the
// figure; insets are child axes pinned to a corner of their parent.
//
// Axes implements zoom.Surface, and, for insets, zoom.View.
type Axes struct {
	fig    *Figure
	parent *Axes
	id     string

	// Outer bounds in cells, assigned by layout.
	x, y, w, h int

	xlim, ylim *[2]float64
	series     []zoom.Series
	shapes     []*Rectangle
	insets     []*Axes
	title      string

	size    zoom.InsetSize
	anchor  zoom.Anchor
	removed bool
}

var (
	_ zoom.Surface  = (*Axes)(nil)
	_ zoom.View     = (*Axes)(nil)
	_ zoom.Resolver = (*Axes)(nil)
)

// ID returns the axes identifier.
func (a *Axes) ID() string { return a.id }

// IsInset reports whether the axes is pinned inside another axes.
func (a *Axes) IsInset() bool { return a.parent != nil }

// Bounds returns the outer bounds in cells.
func (a *Axes) Bounds() (x, y, w, h int) { return a.x, a.y, a.w, a.h }

// plotArea returns the cell rectangle the data is drawn in.
func (a *Axes) plotArea() (x, y, w, h int) {
	if a.parent != nil {
		// Border on every side plus a title row.
		x, y, w, h = a.x+1, a.y+2, a.w-2, a.h-3
	} else {
		x, y = a.x+yLabelWidth, a.y+1
		w, h = a.w-yLabelWidth, a.h-3
	}
	return x, y, max(w, 0), max(h, 0)
}

// Plot adds a series.
func (a *Axes) Plot(s zoom.Series) {
	a.series = append(a.series, s)
	a.RequestRedraw()
}

// Series returns a snapshot of the series on the axes.
func (a *Axes) Series() []zoom.Series {
	return slices.Clone(a.series)
}

// Clear removes all series and the title and returns the limits to
// autoscaling. Shapes and insets stay.
func (a *Axes) Clear() {
	a.series = nil
	a.title = ""
	a.xlim, a.ylim = nil, nil
	a.RequestRedraw()
}

// SetXLim fixes the visible x range. lo > hi is accepted and draws the same
// range as hi, lo.
func (a *Axes) SetXLim(lo, hi float64) {
	a.xlim = &[2]float64{lo, hi}
	a.RequestRedraw()
}

// SetYLim fixes the visible y range.
func (a *Axes) SetYLim(lo, hi float64) {
	a.ylim = &[2]float64{lo, hi}
	a.RequestRedraw()
}

// SetTitle sets the label drawn above the plot area.
func (a *Axes) SetTitle(title string) {
	a.title = title
	a.RequestRedraw()
}

// Title returns the axes label.
func (a *Axes) Title() string { return a.title }

// Limits returns the fixed limits, or limits autoscaled from the data with a
// 5% margin. It reports false when there are neither.
func (a *Axes) Limits() (zoom.Limits, bool) {
	l, haveData := a.dataLimits()
	if (a.xlim == nil || a.ylim == nil) && !haveData {
		return zoom.Limits{}, false
	}
	if a.xlim != nil {
		l.XMin, l.XMax = a.xlim[0], a.xlim[1]
	}
	if a.ylim != nil {
		l.YMin, l.YMax = a.ylim[0], a.ylim[1]
	}
	return l, true
}

func (a *Axes) dataLimits() (zoom.Limits, bool) {
	l := zoom.Limits{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	found := false
	for _, s := range a.series {
		n := min(len(s.X), len(s.Y))
		for i := 0; i < n; i++ {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			l.XMin, l.XMax = math.Min(l.XMin, x), math.Max(l.XMax, x)
			l.YMin, l.YMax = math.Min(l.YMin, y), math.Max(l.YMax, y)
			found = true
		}
	}
	if !found {
		return zoom.Limits{}, false
	}
	l.XMin, l.XMax = pad(l.XMin, l.XMax)
	l.YMin, l.YMax = pad(l.YMin, l.YMax)
	return l, true
}

// pad widens [lo, hi] by 5% on each side, or by 0.5 when it is a point.
func pad(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	m := (hi - lo) * 0.05
	return lo - m, hi + m
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CellSize returns the data extent of one terminal cell.
func (a *Axes) CellSize() (float64, float64) {
	l, ok := a.Limits()
	_, _, w, h := a.plotArea()
	if !ok || w == 0 || h == 0 {
		return 0, 0
	}
	return l.Width() / float64(w), l.Height() / float64(h)
}

// Events returns the figure's event source.
func (a *Axes) Events() zoom.EventSource { return a.fig }

// RequestRedraw marks the figure dirty.
func (a *Axes) RequestRedraw() { a.fig.RequestRedraw() }

// AddRectangle attaches a rectangle overlay.
func (a *Axes) AddRectangle(style zoom.OverlayStyle) (zoom.Shape, error) {
	if a.removed {
		return nil, ErrRemoved
	}
	r := &Rectangle{axes: a, style: style}
	a.shapes = append(a.shapes, r)
	a.RequestRedraw()
	return r, nil
}

// NewInset creates a child axes pinned to a corner of the plot area.
func (a *Axes) NewInset(size zoom.InsetSize, anchor zoom.Anchor) (zoom.View, error) {
	if a.removed {
		return nil, ErrRemoved
	}
	in := &Axes{
		fig:    a.fig,
		parent: a,
		id:     a.fig.newID(),
		size:   size,
		anchor: anchor,
	}
	a.insets = append(a.insets, in)
	in.layout()
	a.RequestRedraw()
	return in, nil
}

// Insets returns the child axes.
func (a *Axes) Insets() []*Axes { return slices.Clone(a.insets) }

// Remove detaches an inset from its parent. The main axes cannot be removed.
func (a *Axes) Remove() {
	if a.parent == nil || a.removed {
		return
	}
	a.removed = true
	a.parent.insets = slices.DeleteFunc(a.parent.insets, func(in *Axes) bool { return in == a })
	a.RequestRedraw()
}

// layout places insets relative to the parent's plot area, one cell in from
// the anchor corner.
func (a *Axes) layout() {
	if a.parent != nil {
		px, py, pw, ph := a.parent.plotArea()
		a.w = a.size.Resolve(pw)
		a.h = a.size.Resolve(ph)
		// Border plus title need at least 4 rows and 3 columns to show anything.
		a.w = min(max(a.w, 3), pw)
		a.h = min(max(a.h, 4), ph)

		const gap = 1
		switch a.anchor {
		case zoom.UpperLeft:
			a.x, a.y = px+gap, py+gap
		case zoom.LowerLeft:
			a.x, a.y = px+gap, py+ph-a.h-gap
		case zoom.LowerRight:
			a.x, a.y = px+pw-a.w-gap, py+ph-a.h-gap
		default:
			a.x, a.y = px+pw-a.w-gap, py+gap
		}
		a.x = max(a.x, px)
		a.y = max(a.y, py)
	}
	for _, in := range a.insets {
		in.layout()
	}
}

// hit returns the topmost axes under the cell, searching insets first.
func (a *Axes) hit(cx, cy int) *Axes {
	for i := len(a.insets) - 1; i >= 0; i-- {
		if h := a.insets[i].hit(cx, cy); h != nil {
			return h
		}
	}
	if cx >= a.x && cx < a.x+a.w && cy >= a.y && cy < a.y+a.h {
		return a
	}
	return nil
}

// CellToData maps an absolute cell to data coordinates at the cell centre.
// It reports false when the cell is outside the plot area or the axes has
// no limits.
func (a *Axes) CellToData(cx, cy int) (float64, float64, bool) {
	px, py, pw, ph := a.plotArea()
	if pw == 0 || ph == 0 || cx < px || cy < py || cx >= px+pw || cy >= py+ph {
		return 0, 0, false
	}
	l, ok := a.Limits()
	if !ok {
		return 0, 0, false
	}
	fx := (float64(cx-px) + 0.5) / float64(pw)
	fy := (float64(cy-py) + 0.5) / float64(ph)
	return l.XMin + fx*l.Width(), l.YMax - fy*l.Height(), true
}

// projection maps data coordinates onto a pixel grid of pw x ph dots.
type projection struct {
	lim    zoom.Limits
	pw, ph float64
}

func newProjection(l zoom.Limits, pw, ph int) (projection, bool) {
	l = l.Normalized()
	if l.Width() <= 0 || l.Height() <= 0 || !finite(l.Width()) || !finite(l.Height()) {
		return projection{}, false
	}
	return projection{lim: l, pw: float64(pw), ph: float64(ph)}, true
}

// pixel returns continuous pixel coordinates; y grows downwards.
func (p projection) pixel(x, y float64) (float64, float64) {
	return (x - p.lim.XMin) / p.lim.Width() * p.pw,
		(p.lim.YMax - y) / p.lim.Height() * p.ph
}

// Rectangle is a rectangle overlay on an Axes.
type Rectangle struct {
	axes    *Axes
	style   zoom.OverlayStyle
	bounds  zoom.Rect
	removed bool
}

// SetBounds moves the rectangle.
func (r *Rectangle) SetBounds(b zoom.Rect) {
	r.bounds = b
	r.axes.RequestRedraw()
}

// Bounds returns the rectangle geometry.
func (r *Rectangle) Bounds() zoom.Rect { return r.bounds }

// Remove detaches the rectangle from its axes.
func (r *Rectangle) Remove() {
	if r.removed {
		return
	}
	r.removed = true
	r.axes.shapes = slices.DeleteFunc(r.axes.shapes, func(s *Rectangle) bool { return s == r })
	r.axes.RequestRedraw()
}

func (r *Rectangle) edgeColor() color.Color {
	if r.style.EdgeColor != nil {
		return r.style.EdgeColor
	}
	return color.RGBA{R: 0xff, A: 0xff}
}
