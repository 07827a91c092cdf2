package zoom

import (
	"image/color"

	"charm.land/log/v2"
)

// Defaults for a new controller.
const (
	DefaultZoomWidth    = 0.15
	DefaultZoomHeight   = 0.15
	DefaultInsetSize    = "30%"
	DefaultResizeMargin = 0.03
	DefaultTitle        = "Zoom"
)

// Options configures a Controller.
type Options struct {
	// ZoomWidth and ZoomHeight size the initial rectangle as a fraction of
	// the host's visible range. Both must be in (0, 1].
	ZoomWidth  float64
	ZoomHeight float64

	// InsetSize is "30%" style or an absolute cell count.
	InsetSize string

	// Anchor is the host corner the preview is pinned to.
	Anchor Anchor

	// ResizeMargin is the fraction of width/height around the corner that
	// starts a resize instead of a drag.
	ResizeMargin float64

	Title   string
	Overlay OverlayStyle
	Logger  *log.Logger
}

// Option is a functional option for configuring a Controller.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		ZoomWidth:    DefaultZoomWidth,
		ZoomHeight:   DefaultZoomHeight,
		InsetSize:    DefaultInsetSize,
		Anchor:       UpperRight,
		ResizeMargin: DefaultResizeMargin,
		Title:        DefaultTitle,
		Overlay: OverlayStyle{
			Fill:      false,
			EdgeColor: color.RGBA{R: 0xff, A: 0xff},
			LineWidth: 1.5,
		},
	}
}

// WithZoomWidth sets the initial rectangle width as a fraction of the x range.
func WithZoomWidth(f float64) Option {
	return func(o *Options) {
		o.ZoomWidth = f
	}
}

// WithZoomHeight sets the initial rectangle height as a fraction of the y range.
func WithZoomHeight(f float64) Option {
	return func(o *Options) {
		o.ZoomHeight = f
	}
}

// WithInsetSize sets the preview footprint, e.g. "30%" or "24".
func WithInsetSize(spec string) Option {
	return func(o *Options) {
		o.InsetSize = spec
	}
}

// WithAnchor pins the preview to a corner of the host.
func WithAnchor(a Anchor) Option {
	return func(o *Options) {
		o.Anchor = a
	}
}

// WithResizeMargin sets the corner sensitivity.
func WithResizeMargin(m float64) Option {
	return func(o *Options) {
		if m > 0 {
			o.ResizeMargin = m
		}
	}
}

// WithTitle sets the preview label.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithOverlayStyle sets the rectangle styling.
func WithOverlayStyle(style OverlayStyle) Option {
	return func(o *Options) {
		o.Overlay = style
	}
}

// WithLogger routes controller debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
