// Package zoom implements the draggable, resizable selection rectangle that
// drives a live zoomed preview of a plotting surface.
//
// A Controller attaches to a Surface, draws a rectangle on it and pins a
// preview inset to one of its corners. Pointer presses inside the rectangle
// start a drag; presses near its far corner start a resize. Every geometry
// change is pushed to both the rectangle shape and the preview, whose
// visible range always equals the rectangle bounds.
package zoom

import (
	"errors"
	"fmt"
	"io"
	"math"

	"charm.land/log/v2"
)

var (
	// ErrInvalidSize is returned when a zoom fraction is outside (0, 1].
	ErrInvalidSize = errors.New("zoom size must be in (0, 1]")
	// ErrNoLimits is returned when the surface has no visible range yet.
	ErrNoLimits = errors.New("surface has no visible range")
	// ErrInvalidInsetSize is returned for a malformed inset size specifier.
	ErrInvalidInsetSize = errors.New("invalid inset size")
)

// Mode is the controller's interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// interaction carries the press context of the active mode. The zero
// state is idle{}; a press context only exists inside dragging or resizing.
type interaction interface {
	mode() Mode
}

type idle struct{}

// dragging remembers the origin and pointer position at press time.
type dragging struct {
	origin Point
	press  Point
}

// resizing remembers the size and pointer position at press time.
type resizing struct {
	w, h  float64
	press Point
}

func (idle) mode() Mode     { return ModeIdle }
func (dragging) mode() Mode { return ModeDragging }
func (resizing) mode() Mode { return ModeResizing }

// Controller owns the selection rectangle and its preview.
type Controller struct {
	surface Surface
	shape   Shape
	preview View
	subs    []SubscriptionID

	rect   Rect
	state  interaction
	margin float64
	title  string
	log    *log.Logger
	closed bool
}

// New attaches a selection rectangle and preview inset to surface.
//
// The rectangle is sized as a fraction of the surface's visible range and
// placed one rectangle size in from the lower-left corner. Construction is
// all or nothing: if any step fails, everything already attached is removed
// before the error is returned.
func New(surface Surface, opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !validFraction(o.ZoomWidth) || !validFraction(o.ZoomHeight) {
		return nil, fmt.Errorf("%w: width=%v height=%v", ErrInvalidSize, o.ZoomWidth, o.ZoomHeight)
	}
	insetSize, err := ParseInsetSize(o.InsetSize)
	if err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, ErrNoLimits
	}
	lim, ok := surface.Limits()
	if !ok || !lim.Valid() {
		return nil, ErrNoLimits
	}

	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := lim.Width() * o.ZoomWidth
	h := lim.Height() * o.ZoomHeight
	c := &Controller{
		surface: surface,
		rect:    Rect{X: lim.XMin + w, Y: lim.YMin + h, W: w, H: h},
		state:   idle{},
		margin:  o.ResizeMargin,
		title:   o.Title,
		log:     logger,
	}

	if err := c.attach(o, insetSize); err != nil {
		c.detach()
		return nil, err
	}

	c.sync()
	c.log.Debug("zoom attached", "rect", c.rect, "inset", insetSize.String(), "anchor", o.Anchor)
	return c, nil
}

func validFraction(f float64) bool {
	return f > 0 && f <= 1 && !math.IsNaN(f)
}

func (c *Controller) attach(o Options, size InsetSize) error {
	shape, err := c.surface.AddRectangle(o.Overlay)
	if err != nil {
		return fmt.Errorf("failed to add selection rectangle: %w", err)
	}
	c.shape = shape

	preview, err := c.surface.NewInset(size, o.Anchor)
	if err != nil {
		return fmt.Errorf("failed to create preview inset: %w", err)
	}
	c.preview = preview

	events := c.surface.Events()
	if events == nil {
		return errors.New("surface has no event source")
	}
	handlers := []struct {
		kind EventKind
		h    Handler
	}{
		{EventPress, c.HandlePress},
		{EventRelease, c.HandleRelease},
		{EventMotion, c.HandleMotion},
	}
	for _, entry := range handlers {
		id, err := events.Subscribe(entry.kind, entry.h)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s events: %w", entry.kind, err)
		}
		c.subs = append(c.subs, id)
	}
	return nil
}

// detach undoes whatever attach managed to set up.
func (c *Controller) detach() {
	if len(c.subs) > 0 {
		if events := c.surface.Events(); events != nil {
			for _, id := range c.subs {
				events.Unsubscribe(id)
			}
		}
		c.subs = nil
	}
	if c.preview != nil {
		c.preview.Remove()
		c.preview = nil
	}
	if c.shape != nil {
		c.shape.Remove()
		c.shape = nil
	}
}

// Close deregisters the event handlers and removes the rectangle and the
// preview from the surface. It is safe to call more than once.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.detach()
	c.surface.RequestRedraw()
	c.log.Debug("zoom detached")
	return nil
}

// Rect returns the current selection rectangle.
func (c *Controller) Rect() Rect { return c.rect }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.state.mode() }

// inSurface reports whether e carries a data position over our surface.
func (c *Controller) inSurface(e Event) bool {
	return e.InData && e.Surface == c.surface &&
		!math.IsNaN(e.X) && !math.IsNaN(e.Y)
}

// InResizeZone reports whether e is close enough to the rectangle's far
// corner to start a resize. The tolerance on each axis is the resize margin
// times |W| or |H|, so it scales with the rectangle. When the surface
// implements Resolver the tolerance is never less than 0.75 of its CellSize
// on that axis, otherwise the corner could fall between two reachable
// pointer positions.
func (c *Controller) InResizeZone(e Event) bool {
	if !c.inSurface(e) {
		return false
	}
	corner := c.rect.Corner()
	tolX := math.Abs(c.rect.W) * c.margin
	tolY := math.Abs(c.rect.H) * c.margin
	if r, ok := c.surface.(Resolver); ok {
		dx, dy := r.CellSize()
		tolX = math.Max(tolX, 0.75*math.Abs(dx))
		tolY = math.Max(tolY, 0.75*math.Abs(dy))
	}
	return math.Abs(e.X-corner.X) < tolX && math.Abs(e.Y-corner.Y) < tolY
}

// HandlePress starts a resize or a drag when the press lands on the
// rectangle. Presses elsewhere are ignored.
func (c *Controller) HandlePress(e Event) {
	if c.closed || !c.inSurface(e) {
		return
	}
	if _, ok := c.state.(idle); !ok {
		return
	}

	switch {
	case c.InResizeZone(e):
		c.state = resizing{w: c.rect.W, h: c.rect.H, press: e.Point()}
	case c.rect.Contains(e.Point()):
		c.state = dragging{origin: c.rect.Origin(), press: e.Point()}
	default:
		return
	}
	c.log.Debug("zoom press", "mode", c.Mode(), "x", e.X, "y", e.Y)
	// The rectangle has not moved but the mode has.
	c.surface.RequestRedraw()
}

// HandleMotion applies the pointer delta since the press to the rectangle.
func (c *Controller) HandleMotion(e Event) {
	if c.closed || !c.inSurface(e) {
		return
	}

	switch s := c.state.(type) {
	case resizing:
		d := e.Point().Sub(s.press)
		c.rect = c.rect.Resize(s.w+d.X, s.h+d.Y)
	case dragging:
		d := e.Point().Sub(s.press)
		c.rect = c.rect.MoveTo(s.origin.Add(d))
	default:
		return
	}
	c.sync()
}

// HandleRelease ends any interaction. It is a no-op apart from the final
// resync when nothing was in progress.
func (c *Controller) HandleRelease(Event) {
	if c.closed {
		return
	}
	if prev := c.Mode(); prev != ModeIdle {
		c.log.Debug("zoom release", "mode", prev, "rect", c.rect)
	}
	c.state = idle{}
	c.sync()
}

// sync pushes the rectangle to the shape and the preview, then asks the
// host for a repaint.
func (c *Controller) sync() {
	if c.shape != nil {
		c.shape.SetBounds(c.rect)
	}
	if c.preview != nil {
		c.preview.Clear()
		for _, s := range c.surface.Series() {
			c.preview.Plot(Series{
				Label:     s.Label,
				X:         s.X,
				Y:         s.Y,
				Color:     s.Color,
				LineWidth: s.LineWidth,
			})
		}
		b := c.rect.Bounds()
		c.preview.SetXLim(b.XMin, b.XMax)
		c.preview.SetYLim(b.YMin, b.YMax)
		c.preview.SetTitle(c.title)
	}
	c.surface.RequestRedraw()
}
