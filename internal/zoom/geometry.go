package zoom

import "math"

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Limits is a visible coordinate range.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the x extent of the range.
func (l Limits) Width() float64 { return l.XMax - l.XMin }

// Height returns the y extent of the range.
func (l Limits) Height() float64 { return l.YMax - l.YMin }

// Valid reports whether the range is finite and non-empty on both axes.
func (l Limits) Valid() bool {
	for _, v := range []float64{l.XMin, l.XMax, l.YMin, l.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return l.XMax != l.XMin && l.YMax != l.YMin
}

// Normalized returns the range with min <= max on both axes.
func (l Limits) Normalized() Limits {
	if l.XMin > l.XMax {
		l.XMin, l.XMax = l.XMax, l.XMin
	}
	if l.YMin > l.YMax {
		l.YMin, l.YMax = l.YMax, l.YMin
	}
	return l
}

// Rect is the selection rectangle: an origin plus a signed width and height.
// Width and height may be zero or negative after a resize; such a rectangle
// is kept as-is and its bounds come out inverted.
type Rect struct {
	X, Y float64
	W, H float64
}

// Origin returns the rectangle's anchor point.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Corner returns the point opposite the origin (bottom-right on screen for
// a y-up axis with positive size).
func (r Rect) Corner() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Bounds returns (x, x+w, y, y+h) without normalizing.
func (r Rect) Bounds() Limits {
	return Limits{XMin: r.X, XMax: r.X + r.W, YMin: r.Y, YMax: r.Y + r.H}
}

// Contains reports whether p lies inside the rectangle, edges included.
// Inverted rectangles are normalized first.
func (r Rect) Contains(p Point) bool {
	b := r.Bounds().Normalized()
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// MoveTo returns the rectangle with its origin at p.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Resize returns the rectangle with a new width and height.
func (r Rect) Resize(w, h float64) Rect {
	r.W, r.H = w, h
	return r
}
