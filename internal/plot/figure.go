// Package plot is a terminal plotting surface: a Figure holding one main
// Axes drawn with braille dots, rectangle overlays and inset axes.
//
// The Figure is also the pointer event source for everything drawn on it.
// Hosts feed it cell-coordinate mouse input through Dispatch; it resolves
// the axes under the pointer, converts the cell to data coordinates and
// hands the event to subscribed handlers in registration order.
package plot

import (
	"errors"
	"slices"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
	"github.com/google/uuid"
)

// ErrClosed is returned when subscribing to a closed figure.
var ErrClosed = errors.New("figure is closed")

type subscription struct {
	id   zoom.SubscriptionID
	kind zoom.EventKind
	h    zoom.Handler
}

// Figure owns the main axes, the event registry and the redraw flag.
type Figure struct {
	width, height int
	main          *Axes

	mu     sync.Mutex
	subs   []subscription
	closed bool

	dirty bool
}

var _ zoom.EventSource = (*Figure)(nil)

// NewFigure returns a figure of the given size in cells.
func NewFigure(width, height int) *Figure {
	f := &Figure{dirty: true}
	f.main = &Axes{fig: f, id: f.newID()}
	f.Resize(width, height)
	return f
}

func (f *Figure) newID() string {
	return uuid.NewString()
}

// Axes returns the main axes.
func (f *Figure) Axes() *Axes { return f.main }

// Size returns the figure size in cells.
func (f *Figure) Size() (int, int) { return f.width, f.height }

// Resize changes the figure size and relays out every axes.
func (f *Figure) Resize(width, height int) {
	f.width, f.height = max(width, 0), max(height, 0)
	f.main.x, f.main.y = 0, 0
	f.main.w, f.main.h = f.width, f.height
	f.main.layout()
	f.RequestRedraw()
}

// RequestRedraw marks the figure as needing a repaint. Calls between two
// repaints collapse into one.
func (f *Figure) RequestRedraw() {
	f.dirty = true
}

// TakeRedraw reports whether a repaint was requested and clears the request.
func (f *Figure) TakeRedraw() bool {
	d := f.dirty
	f.dirty = false
	return d
}

// Subscribe registers h for events of the given kind.
func (f *Figure) Subscribe(kind zoom.EventKind, h zoom.Handler) (zoom.SubscriptionID, error) {
	if h == nil {
		return "", errors.New("nil handler")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", ErrClosed
	}
	id := zoom.SubscriptionID(uuid.NewString())
	f.subs = append(f.subs, subscription{id: id, kind: kind, h: h})
	return id, nil
}

// Unsubscribe removes a handler. Unknown ids are ignored.
func (f *Figure) Unsubscribe(id zoom.SubscriptionID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = slices.DeleteFunc(f.subs, func(s subscription) bool { return s.id == id })
}

// Subscriptions returns the number of registered handlers.
func (f *Figure) Subscriptions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close drops every subscription and refuses new ones.
func (f *Figure) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.subs = nil
}

// EventAt builds the event for a pointer at cell (cx, cy).
func (f *Figure) EventAt(kind zoom.EventKind, cx, cy, button int) zoom.Event {
	e := zoom.Event{Kind: kind, Button: button}
	ax := f.main.hit(cx, cy)
	if ax == nil {
		return e
	}
	e.Surface = ax
	e.X, e.Y, e.InData = ax.CellToData(cx, cy)
	return e
}

// Dispatch delivers a pointer event at cell (cx, cy) to the handlers for
// its kind. Handlers may unsubscribe while being called.
func (f *Figure) Dispatch(kind zoom.EventKind, cx, cy, button int) zoom.Event {
	e := f.EventAt(kind, cx, cy, button)

	f.mu.Lock()
	var handlers []zoom.Handler
	for _, s := range f.subs {
		if s.kind == kind {
			handlers = append(handlers, s.h)
		}
	}
	f.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
	return e
}

// Layers renders the figure as canvas layers starting at z.
func (f *Figure) Layers(opts RenderOptions, z int) []*lipgloss.Layer {
	return f.main.Layers(opts, z)
}

// Render composes the figure onto a canvas of its own size.
func (f *Figure) Render(opts RenderOptions) string {
	canvas := lipgloss.NewCanvas(f.width, f.height)
	for _, l := range f.Layers(opts, 0) {
		canvas.Compose(l)
	}
	return lipgloss.Sprint(canvas.Render())
}
