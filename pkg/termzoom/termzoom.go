// Package termzoom provides a zoom selection for terminal plots that can be
// embedded in other Bubble Tea applications or attached to any host that
// implements [Surface].
//
// # Basic Usage
//
// Plot some series and run the viewer:
//
//	model, err := termzoom.New(series)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, termzoom.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model, err := termzoom.New(series,
//		termzoom.WithTheme("dracula"),
//		termzoom.WithInsetSize("40%"),
//		termzoom.WithAnchor(termzoom.LowerLeft),
//	)
//
// # Custom Hosts
//
// ZoomWindow attaches the selection to any [Surface]:
//
//	c, err := termzoom.ZoomWindow(surface, zoom.WithZoomWidth(0.2))
//	defer c.Close()
package termzoom

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/app"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/input"
	"github.com/Gaurav-Gosain/termzoom/internal/plot"
	"github.com/Gaurav-Gosain/termzoom/internal/theme"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// Model is the viewer model that implements tea.Model.
type Model = app.Viewer

// Re-exported host and controller types.
type (
	Controller   = zoom.Controller
	Surface      = zoom.Surface
	Series       = zoom.Series
	Rect         = zoom.Rect
	Limits       = zoom.Limits
	Anchor       = zoom.Anchor
	OverlayStyle = zoom.OverlayStyle
	ZoomOption   = zoom.Option
	Figure       = plot.Figure
)

// Inset anchors.
const (
	UpperRight = zoom.UpperRight
	UpperLeft  = zoom.UpperLeft
	LowerLeft  = zoom.LowerLeft
	LowerRight = zoom.LowerRight
)

// ZoomWindow attaches a zoom selection and its preview inset to surface.
// It is the library entry point for hosts other than the built-in viewer.
func ZoomWindow(surface Surface, opts ...ZoomOption) (*Controller, error) {
	return zoom.New(surface, opts...)
}

// NewFigure returns an empty terminal figure of the given size in cells.
// Its main axes satisfy [Surface].
func NewFigure(width, height int) *Figure {
	return plot.NewFigure(width, height)
}

// Options configures a viewer.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	Title string

	// ASCIIOnly draws with ASCII instead of braille and box characters.
	ASCIIOnly bool

	BorderStyle string

	InsetSize string
	Anchor    Anchor

	ZoomWidth, ZoomHeight float64

	// Width and Height set the initial size (useful for SSH/web terminals).
	Width, Height int

	// UserConfig supplies keybindings; nil loads the user's config file.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring a viewer.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the border style (rounded, normal, thick, double, hidden, block, ascii).
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithInsetSize sets the preview size, e.g. "30%" or "24".
func WithInsetSize(size string) Option {
	return func(o *Options) {
		o.InsetSize = size
	}
}

// WithAnchor sets the corner the preview is pinned to.
func WithAnchor(a Anchor) Option {
	return func(o *Options) {
		o.Anchor = a
	}
}

// WithZoomSize sets the initial selection size as fractions of the visible
// range.
func WithZoomSize(width, height float64) Option {
	return func(o *Options) {
		o.ZoomWidth, o.ZoomHeight = width, height
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width, o.Height = width, height
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		InsetSize:  zoom.DefaultInsetSize,
		Anchor:     UpperRight,
		ZoomWidth:  zoom.DefaultZoomWidth,
		ZoomHeight: zoom.DefaultZoomHeight,
		Width:      80,
		Height:     24,
	}
}

// New creates a viewer plotting series with a zoom selection attached.
func New(series []Series, opts ...Option) (*Model, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	app.SetInputHandler(input.HandleInput)

	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.BorderStyle != "" {
		config.BorderStyle = options.BorderStyle
	}
	if options.Theme != "" {
		if err := theme.Initialize(options.Theme); err != nil {
			config.Logger().Warn("failed to load theme", "theme", options.Theme, "err", err)
		}
	}

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	return app.NewViewer(app.Options{
		Series: series,
		Title:  options.Title,
		ZoomOptions: []zoom.Option{
			zoom.WithZoomWidth(options.ZoomWidth),
			zoom.WithZoomHeight(options.ZoomHeight),
			zoom.WithInsetSize(options.InsetSize),
			zoom.WithAnchor(options.Anchor),
			zoom.WithOverlayStyle(zoom.OverlayStyle{
				EdgeColor: theme.SelectionEdge(),
				LineWidth: 1.5,
			}),
		},
		KeybindRegistry: config.NewKeybindRegistry(userConfig),
		Width:           options.Width,
		Height:          options.Height,
	})
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the viewer.
//
//	p := tea.NewProgram(model, termzoom.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops pointer motion
// unless the selection is being dragged or resized.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return input.FilterMouseMotion(model, msg)
}
