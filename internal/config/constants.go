// Package config holds termzoom's runtime settings: the user TOML file,
// environment and CLI overrides, keybindings and shared constants.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Zoom Defaults
// =============================================================================

const (
	// DefaultZoomWidth is the selection width as a fraction of the visible x range.
	DefaultZoomWidth = 0.15
	// DefaultZoomHeight is the selection height as a fraction of the visible y range.
	DefaultZoomHeight = 0.15
	// DefaultInsetSize is the preview size, a percentage or an absolute cell count.
	DefaultInsetSize = "30%"
	// DefaultInsetAnchor is the corner the preview is pinned to.
	DefaultInsetAnchor = "upper-right"
	// DefaultResizeMargin is the resize hit tolerance as a fraction of the rectangle size.
	DefaultResizeMargin = 0.03
)

// =============================================================================
// Rendering
// =============================================================================

const (
	// MinFigureWidth is the narrowest terminal the plot is drawn in.
	MinFigureWidth = 30
	// MinFigureHeight is the shortest terminal the plot is drawn in.
	MinFigureHeight = 10
	// StatusBarHeight is the number of rows reserved below the figure.
	StatusBarHeight = 1
	// NotificationDuration is how long status messages stay visible.
	NotificationDuration = 3 * time.Second
)

// =============================================================================
// Runtime settings, written by ApplyOverrides
// =============================================================================

// UseASCIIOnly replaces braille and box glyphs with ASCII.
var UseASCIIOnly = false

// BorderStyle is the preview border style.
var BorderStyle = "rounded"

// ShowGrid draws quarter grid dots on the main axes.
var ShowGrid = true

// ShowLegend draws series labels in the top-left of the main axes.
var ShowLegend = true

// ZoomWidth is the initial selection width fraction.
var ZoomWidth = DefaultZoomWidth

// ZoomHeight is the initial selection height fraction.
var ZoomHeight = DefaultZoomHeight

// InsetSize is the preview size specifier.
var InsetSize = DefaultInsetSize

// InsetAnchor is the preview corner.
var InsetAnchor = DefaultInsetAnchor

// ResizeMargin is the resize hit tolerance fraction.
var ResizeMargin = DefaultResizeMargin

// GetBorderForStyle returns the lipgloss border for BorderStyle.
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// ValidBorderStyles lists the accepted border_style values.
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}

// ValidAnchors lists the accepted inset_anchor values.
var ValidAnchors = []string{"upper-right", "upper-left", "lower-left", "lower-right"}
