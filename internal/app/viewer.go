// Package app is the bubbletea model for termzoom: it owns the plot figure
// and the zoom controller attached to it.
package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/Gaurav-Gosain/termzoom/internal/config"
	"github.com/Gaurav-Gosain/termzoom/internal/plot"
	"github.com/Gaurav-Gosain/termzoom/internal/zoom"
)

// Options configures a Viewer.
type Options struct {
	Series []zoom.Series
	Title  string

	// ZoomOptions are passed to zoom.New on every (re)creation of the
	// selection.
	ZoomOptions []zoom.Option

	KeybindRegistry *config.KeybindRegistry
	Logger          *log.Logger

	// Initial size in cells; a WindowSizeMsg replaces it.
	Width, Height int
}

// Notification is a transient status line message.
type Notification struct {
	Message string
	IsError bool
	Until   time.Time
}

// Viewer is the application model.
type Viewer struct {
	Figure *plot.Figure
	Zoom   *zoom.Controller

	Width, Height int

	ShowHelp   bool
	ShowGrid   bool
	ShowLegend bool
	ASCII      bool

	KeybindRegistry *config.KeybindRegistry
	Notification    *Notification

	zoomOpts []zoom.Option
	log      *log.Logger

	cachedView string
}

var _ tea.Model = (*Viewer)(nil)

// NewViewer plots the series and attaches the zoom selection.
func NewViewer(opts Options) (*Viewer, error) {
	if len(opts.Series) == 0 {
		return nil, fmt.Errorf("failed to create viewer: no series to plot")
	}
	logger := opts.Logger
	if logger == nil {
		logger = config.Logger()
	}
	registry := opts.KeybindRegistry
	if registry == nil {
		registry = config.NewKeybindRegistry(nil)
	}

	w, h := max(opts.Width, config.MinFigureWidth), max(opts.Height, config.MinFigureHeight)
	v := &Viewer{
		Figure:          plot.NewFigure(w, h-config.StatusBarHeight),
		Width:           w,
		Height:          h,
		ShowGrid:        config.ShowGrid,
		ShowLegend:      config.ShowLegend,
		ASCII:           config.UseASCIIOnly,
		KeybindRegistry: registry,
		zoomOpts:        append([]zoom.Option{zoom.WithLogger(logger)}, opts.ZoomOptions...),
		log:             logger,
	}

	ax := v.Figure.Axes()
	for _, s := range opts.Series {
		ax.Plot(s)
	}
	ax.SetTitle(opts.Title)

	c, err := zoom.New(ax, v.zoomOpts...)
	if err != nil {
		v.Figure.Close()
		return nil, fmt.Errorf("failed to attach zoom selection: %w", err)
	}
	v.Zoom = c
	v.log.Debug("viewer created", "series", len(opts.Series), "size", fmt.Sprintf("%dx%d", w, h))
	return v, nil
}

// ResetSelection replaces the selection with a fresh one at its initial
// geometry.
func (v *Viewer) ResetSelection() error {
	if v.Zoom != nil {
		_ = v.Zoom.Close()
		v.Zoom = nil
	}
	c, err := zoom.New(v.Figure.Axes(), v.zoomOpts...)
	if err != nil {
		return fmt.Errorf("failed to reset selection: %w", err)
	}
	v.Zoom = c
	v.Notify("Selection reset", false)
	return nil
}

// Resize adapts the figure to a new terminal size.
func (v *Viewer) Resize(width, height int) {
	v.Width, v.Height = width, height
	v.Figure.Resize(max(width, 0), max(height-config.StatusBarHeight, 0))
	v.cachedView = ""
}

// Mode returns the selection's interaction mode.
func (v *Viewer) Mode() zoom.Mode {
	if v.Zoom == nil {
		return zoom.ModeIdle
	}
	return v.Zoom.Mode()
}

// Interacting reports whether a drag or resize is in progress.
func (v *Viewer) Interacting() bool {
	return v.Mode() != zoom.ModeIdle
}

// Notify shows msg in the status line for config.NotificationDuration.
func (v *Viewer) Notify(msg string, isError bool) {
	v.Notification = &Notification{
		Message: msg,
		IsError: isError,
		Until:   time.Now().Add(config.NotificationDuration),
	}
	if isError {
		v.log.Warn(msg)
	}
	v.Figure.RequestRedraw()
}

// Invalidate forces the next View to repaint.
func (v *Viewer) Invalidate() {
	v.Figure.RequestRedraw()
}

// Cleanup detaches the selection and closes the figure.
func (v *Viewer) Cleanup() {
	if v.Zoom != nil {
		_ = v.Zoom.Close()
	}
	v.Figure.Close()
}
