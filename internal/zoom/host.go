package zoom

import "image/color"

// EventKind identifies a pointer event type.
type EventKind int

const (
	// EventPress is a pointer button press.
	EventPress EventKind = iota
	// EventRelease is a pointer button release.
	EventRelease
	// EventMotion is pointer movement.
	EventMotion
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventMotion:
		return "motion"
	default:
		return "unknown"
	}
}

// Event is a pointer event delivered by the host.
type Event struct {
	Kind EventKind

	// Surface is the surface the pointer was over, or nil.
	Surface Surface

	// X and Y are data coordinates. They are only meaningful when InData is true.
	X, Y   float64
	InData bool

	Button int
}

// Point returns the event position in data coordinates.
func (e Event) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// Handler receives pointer events.
type Handler func(Event)

// SubscriptionID identifies a registered handler.
type SubscriptionID string

// EventSource delivers pointer events to registered handlers, in order, on a
// single goroutine.
type EventSource interface {
	Subscribe(kind EventKind, h Handler) (SubscriptionID, error)
	Unsubscribe(id SubscriptionID)
}

// Series is one line drawn on a surface.
type Series struct {
	Label     string
	X, Y      []float64
	Color     color.Color
	LineWidth float64
}

// OverlayStyle controls how the selection rectangle is drawn.
type OverlayStyle struct {
	Fill      bool
	EdgeColor color.Color
	LineWidth float64
}

// Shape is a rectangle attached to a surface for rendering.
type Shape interface {
	SetBounds(r Rect)
	Remove()
}

// View is a secondary rendering area, such as the zoom preview.
type View interface {
	Clear()
	Plot(s Series)
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	SetTitle(title string)
	Remove()
}

// Resolver is implemented by surfaces whose pointer moves in coarse steps,
// such as a terminal cell grid. CellSize returns the data extent of one step
// on each axis.
type Resolver interface {
	CellSize() (dx, dy float64)
}

// Surface is the host plotting area the controller attaches to.
type Surface interface {
	// Limits returns the visible range, or false if none is defined yet.
	Limits() (Limits, bool)
	AddRectangle(style OverlayStyle) (Shape, error)
	NewInset(size InsetSize, anchor Anchor) (View, error)
	Series() []Series
	Events() EventSource
	// RequestRedraw schedules a repaint. Repeated calls before the next
	// repaint are coalesced.
	RequestRedraw()
}
